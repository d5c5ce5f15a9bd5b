package fsops

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// AppendLineOnce appends line to path unless an identical line is already
// present. The file and its parent directory are created when missing.
// Re-running is a no-op, which keeps shell-profile edits idempotent.
func AppendLineOnce(fs afero.Fs, path, line string) (bool, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}

	var content string
	if exists {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", path, err)
		}
		content = string(data)

		for _, existing := range strings.Split(content, "\n") {
			if strings.TrimSpace(existing) == strings.TrimSpace(line) {
				return false, nil
			}
		}
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create dir for %s: %w", path, err)
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += line + "\n"

	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", path, err)
	}

	return true, nil
}

// WriteFileAtomic writes data to path via a sibling temp file and rename,
// so a partially written file is never observed.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, ".rig-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", path, err)
	}

	return nil
}
