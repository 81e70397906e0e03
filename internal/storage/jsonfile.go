// Package storage provides the file mechanics under the JSON stores:
// whole-file reads, atomic-rename writes, and a staged multi-file commit that
// approximates all-or-nothing semantics across independent collections.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadJSON loads and decodes one collection file.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// MarshalIndent encodes a collection document the way the files are kept on
// disk (two-space indent, trailing newline).
func MarshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteFileAtomic writes data to a temporary file in the target directory and
// renames it into place, so readers never observe a torn file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("stage %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit %s: %w", path, err)
	}
	return nil
}

// WriteAllStaged writes every file to a temporary path first and only then
// renames them into place. A failure during staging leaves every target file
// untouched. Renames are near-instant on the same filesystem but not
// transactional across files; a crash mid-rename can still leave a partial
// commit, which is as close to all-or-nothing as plain files get.
func WriteAllStaged(files map[string][]byte) error {
	staged := make(map[string]string, len(files))

	cleanup := func() {
		for _, tmpName := range staged {
			os.Remove(tmpName)
		}
	}

	for path, data := range files {
		dir := filepath.Dir(path)
		tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
		if err != nil {
			cleanup()
			return fmt.Errorf("stage %s: %w", path, err)
		}
		tmpName := tmp.Name()
		staged[path] = tmpName

		if _, err := tmp.Write(data); err != nil {
			tmp.Close()
			cleanup()
			return fmt.Errorf("stage %s: %w", path, err)
		}
		if err := tmp.Close(); err != nil {
			cleanup()
			return fmt.Errorf("stage %s: %w", path, err)
		}
	}

	for path, tmpName := range staged {
		if err := os.Rename(tmpName, path); err != nil {
			cleanup()
			return fmt.Errorf("commit %s: %w", path, err)
		}
	}
	return nil
}
