package ucd

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func writeTestZip(t *testing.T, dir string, names map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	zipPath := filepath.Join(dir, "UCD.zip")
	if err := os.WriteFile(zipPath, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return zipPath
}

func TestUnzip(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir := t.TempDir()
	zipPath := writeTestZip(t, dir, map[string]string{
		"Jamo.txt": "1100; G\n",
	})
	if err := unzip(zipPath, dir); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "Jamo.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1100; G\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

// TestUnzipRejectsEscapingEntries guards against archive members with path
// traversal in their names ending up outside the cache directory.
func TestUnzipRejectsEscapingEntries(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir := t.TempDir()
	zipPath := writeTestZip(t, dir, map[string]string{
		"../escaped.txt": "gotcha\n",
	})
	err := unzip(zipPath, dir)
	if err == nil {
		t.Fatal("expected an error for an archive entry with '..' in its name")
	}
	t.Logf("unzip refused: %v", err)
	if _, err := os.Stat(filepath.Join(dir, "..", "escaped.txt")); err == nil {
		t.Error("escaping entry was written outside the target directory")
	}
}
