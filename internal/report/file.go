package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/imgscan/internal/model"
)

// WriteFile writes scan to path in format, replacing any existing file.
// The content goes to a temporary file in the same directory that is
// renamed over path once complete, so readers never see a partial file.
func WriteFile(path, format, version string, scan *model.Scan) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	w, err := NewWriter(format, tmp, version)
	if err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := w.Write(scan); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set output file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace output file: %w", err)
	}
	committed = true
	return nil
}
