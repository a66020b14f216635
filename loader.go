package ucd

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// ucdURL is the canonical location of the Unicode Character Database archive.
const ucdURL = "https://unicode.org/Public/UCD/latest/ucd/UCD.zip"

// maxDataAge is how long the cached data files are trusted without asking
// unicode.org whether a newer archive exists.
const maxDataAge = 3 * 30 * 24 * time.Hour

// probeClient is used for the cheap staleness probe; downloadClient for the
// archive itself, which is some 10 MB.
var probeClient = &http.Client{Timeout: 5 * time.Second}
var downloadClient = &http.Client{Timeout: 10 * time.Minute}

// dirOverride redirects the cache directory; set by tests.
var dirOverride string

// UCDDir returns the directory where the Unicode data files are cached,
// creating it if necessary.
func UCDDir() (string, error) {
	if dirOverride != "" {
		return dirOverride, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no user cache directory: %w", err)
	}
	dir := filepath.Join(base, "ucd")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %v: %w", dir, err)
	}
	return dir, nil
}

// EnsureFiles makes sure the Unicode data files are present in the cache
// directory and not outdated, downloading the archive if necessary.
// Population of the cache is guarded by a file lock, so concurrent callers
// (including other processes) observe a consistent, fully-populated cache.
func EnsureFiles() error {
	dir, err := UCDDir()
	if err != nil {
		return err
	}
	lock := flock.New(filepath.Join(dir, ".ucd-ensure-files.lock"))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire cache lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	if _, err := os.Stat(filepath.Join(dir, "UnicodeData.txt")); os.IsNotExist(err) {
		return downloadFiles(dir)
	}
	if !upToDate(dir) {
		_ = os.Remove(filepath.Join(dir, "UCD.zip"))
		return downloadFiles(dir)
	}
	return nil
}

// ForceDownload unconditionally re-downloads and unpacks the archive.
func ForceDownload() error {
	dir, err := UCDDir()
	if err != nil {
		return err
	}
	lock := flock.New(filepath.Join(dir, ".ucd-ensure-files.lock"))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire cache lock: %w", err)
	}
	defer func() { _ = lock.Unlock() }()
	_ = os.Remove(filepath.Join(dir, "UCD.zip"))
	return downloadFiles(dir)
}

// upToDate reports whether the cached data may still be used. Data younger
// than maxDataAge is trusted outright; older data triggers a HEAD probe for
// the archive's Last-Modified date. Probe failures degrade to "as up to date
// as we can get".
func upToDate(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "UnicodeData.txt"))
	if err != nil {
		return false
	}
	dataDate := info.ModTime()
	if time.Since(dataDate) < maxDataAge {
		tracer().Debugf("Unicode data is less than three months old")
		return true
	}
	resp, err := probeClient.Head(ucdURL)
	if err != nil {
		tracer().Errorf("error checking for Unicode update: %v", err)
		return true
	}
	defer func() { _ = resp.Body.Close() }()
	lastModified := resp.Header.Get("Last-Modified")
	if lastModified == "" {
		tracer().Infof("could not detect when Unicode last updated, updating anyway")
		return false
	}
	available, err := time.Parse(http.TimeFormat, lastModified)
	if err != nil {
		tracer().Errorf("cannot parse Last-Modified date %q: %v", lastModified, err)
		return true
	}
	return available.Before(dataDate)
}

// downloadFiles fetches the UCD archive (unless a zip is already present)
// and unpacks it into the cache directory.
func downloadFiles(dir string) error {
	zipPath := filepath.Join(dir, "UCD.zip")
	if _, err := os.Stat(zipPath); os.IsNotExist(err) {
		tracer().Infof("downloading Unicode Character Database")
		resp, err := downloadClient.Get(ucdURL)
		if err != nil {
			return fmt.Errorf("GET failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()
		f, err := os.Create(zipPath)
		if err != nil {
			return fmt.Errorf("failed to create %v: %w", zipPath, err)
		}
		_, err = io.Copy(f, resp.Body)
		if err != nil {
			_ = f.Close()
			return fmt.Errorf("failed to download %v: %w", ucdURL, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %v: %w", zipPath, err)
		}
	}
	return unzip(zipPath, dir)
}

func unzip(zipPath, dir string) error {
	data, err := os.ReadFile(zipPath)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", zipPath, err)
	}
	z, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to extract %v: %w", zipPath, err)
	}
	for _, file := range z.File {
		if file.FileInfo().IsDir() {
			continue
		}
		// Archive member names must stay inside dir.
		if filepath.IsAbs(file.Name) || strings.Contains(file.Name, "..") {
			return fmt.Errorf("refusing archive entry %q outside of %v", file.Name, dir)
		}
		rc, err := file.Open()
		if err != nil {
			return fmt.Errorf("failed to open %v: %w", file.Name, err)
		}
		if err := writeFile(filepath.Join(dir, file.Name), rc); err != nil {
			return fmt.Errorf("failed to write %v: %w", file.Name, err)
		}
	}
	return nil
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}
	return f.Close()
}
