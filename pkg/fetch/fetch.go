// Package fetch downloads a remote zip archive of preset definitions and
// extracts it into a local presets directory.
//
// Extraction is an idempotent merge: files present in the archive always win,
// files already on disk but absent from the archive are never touched. Entries
// whose paths would escape the target directory are skipped, never written.
// Re-running after a partial failure converges the directory toward the
// archive's contents.
package fetch

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/vladcraftcom/presetforge/pkg/errors"
	"github.com/vladcraftcom/presetforge/pkg/filesystem"
	"github.com/vladcraftcom/presetforge/pkg/logging"
	"github.com/vladcraftcom/presetforge/pkg/types"
)

const (
	// DefaultArchiveURL is the published presets archive
	DefaultArchiveURL = "https://github.com/vladcraftcom/ai_prompt_presets/archive/refs/heads/main.zip"

	// ArchiveRootPrefix is the top-level folder name inside the published
	// archive, stripped from entry paths during extraction
	ArchiveRootPrefix = "ai_prompt_presets-main/"

	// tempArchiveName is the fixed name of the downloaded archive on disk.
	// Concurrent runs against the same target share this name and must be
	// serialized by the caller.
	tempArchiveName = "presets_temp.zip"
)

// Fetcher downloads and extracts preset archives. The zero value is usable;
// all fields are optional.
type Fetcher struct {
	// Client is the HTTP client used for the download (defaults to a client
	// with a 60s timeout)
	Client *http.Client

	// FileSystem is the filesystem written to (defaults to the OS filesystem)
	FileSystem types.FS

	// RootPrefix is stripped from archive entry paths (defaults to
	// ArchiveRootPrefix)
	RootPrefix string
}

func (f *Fetcher) client() *http.Client {
	if f.Client != nil {
		return f.Client
	}
	return &http.Client{Timeout: 60 * time.Second}
}

func (f *Fetcher) fs() types.FS {
	if f.FileSystem != nil {
		return f.FileSystem
	}
	return filesystem.NewOS()
}

func (f *Fetcher) rootPrefix() string {
	if f.RootPrefix != "" {
		return f.RootPrefix
	}
	return ArchiveRootPrefix
}

// FetchAndExtract downloads the archive at url and extracts it into
// targetDir, merging with existing content. Download and container failures
// abort before anything is written; a per-entry failure aborts the remaining
// entries and leaves the already-extracted ones on disk.
func (f *Fetcher) FetchAndExtract(ctx context.Context, targetDir, url string) error {
	log := logging.GetLogger("fetch")
	start := time.Now()

	data, err := f.download(ctx, url)
	if err != nil {
		return err
	}
	log.Debug().Str("url", url).Int("bytes", len(data)).Msg("Archive downloaded")

	fs := f.fs()

	// The temp file lives in the parent of targetDir so it can never be
	// mistaken for an extraction target inside the tree it feeds.
	tempPath := filepath.Join(filepath.Dir(targetDir), tempArchiveName)
	if err := fs.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrDownloadFailed,
			"failed to write temp archive %s", tempPath)
	}

	err = f.extract(fs, tempPath, targetDir)

	// Best-effort cleanup either way
	if rmErr := fs.Remove(tempPath); rmErr != nil {
		log.Warn().Err(rmErr).Str("path", tempPath).Msg("Failed to remove temp archive")
	}

	if err != nil {
		return err
	}

	logging.LogDuration(start, "fetch")
	return nil
}

// download GETs the archive and buffers the full response body in memory
func (f *Fetcher) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDownloadFailed, "invalid archive URL %s", url)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDownloadFailed, "failed to download from %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrDownloadFailed, "HTTP error: %s", resp.Status).
			WithDetail("status", resp.StatusCode).
			WithDetail("url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDownloadFailed, "failed to read response body from %s", url)
	}

	return data, nil
}

// extract unpacks the temp archive into targetDir in archive entry order.
// Parent directories are created before every file write regardless of the
// archive's own ordering.
func (f *Fetcher) extract(fs types.FS, archivePath, targetDir string) error {
	log := logging.GetLogger("fetch")

	data, err := fs.ReadFile(archivePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt,
			"failed to open archive %s", archivePath)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchiveCorrupt,
			"failed to open zip archive %s", archivePath)
	}

	for _, entry := range reader.File {
		rel, ok := enclosedName(entry.Name)
		if !ok {
			// Traversal-style entry; never written.
			log.Warn().Str("entry", entry.Name).Msg("Skipping unsafe archive entry")
			continue
		}

		rel = f.stripRoot(rel)
		if rel == "" {
			// The archive's own root folder.
			continue
		}

		fullPath := filepath.Join(targetDir, filepath.FromSlash(rel))

		if strings.HasSuffix(entry.Name, "/") {
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrExtractFailed,
					"failed to create directory %s", fullPath)
			}
			continue
		}

		if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrExtractFailed,
				"failed to create parent directory for %s", fullPath)
		}

		if err := extractFile(fs, entry, fullPath); err != nil {
			return err
		}

		// Preserve the archived permission bits where present; chmod
		// failures are logged and ignored, never fatal.
		if mode := entry.Mode().Perm(); mode != 0 {
			if err := fs.Chmod(fullPath, mode); err != nil {
				log.Debug().Err(err).Str("path", fullPath).Msg("Failed to set permissions")
			}
		}
	}

	return nil
}

// extractFile writes one archive entry's decompressed content, overwriting
// any existing file at that path
func extractFile(fs types.FS, entry *zip.File, fullPath string) error {
	rc, err := entry.Open()
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed,
			"failed to read archive entry %s", entry.Name)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed,
			"failed to decompress archive entry %s", entry.Name)
	}

	if err := fs.WriteFile(fullPath, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrExtractFailed,
			"failed to extract file %s", fullPath)
	}

	return nil
}

// enclosedName reports whether an archive entry path stays confined within
// the archive root, returning its cleaned slash form. Absolute paths and
// paths escaping via .. segments are rejected.
func enclosedName(name string) (string, bool) {
	if strings.Contains(name, `\`) {
		return "", false
	}

	cleaned := path.Clean(name)
	if path.IsAbs(cleaned) {
		return "", false
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", false
	}
	if cleaned == "." {
		return "", false
	}

	return cleaned, true
}

// stripRoot removes the archive's published root folder from an entry path.
// The root folder itself strips to the empty string.
func (f *Fetcher) stripRoot(rel string) string {
	prefix := strings.TrimSuffix(f.rootPrefix(), "/")
	if rel == prefix {
		return ""
	}
	return strings.TrimPrefix(rel, prefix+"/")
}
