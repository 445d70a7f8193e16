// Package types contains the shared data types and interfaces used across
// presetforge: the preset descriptor shapes loaded from files_config.json,
// the filesystem abstraction used by the materializer and the archive
// ingestor, and the path-provider contract for preset directory persistence.
package types
