// Package atomicfile replaces files without ever exposing a partial write.
package atomicfile

import (
	"io"
	"os"
	"path/filepath"

	"github.com/agentstation/figurines/pkg/constants"
)

// Write fills a temp file beside target and renames it over target. On any
// failure the temp file is removed and target is left as it was.
func Write(target string, fill func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(constants.FilePermissions); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

// WriteBytes replaces target with data.
func WriteBytes(target string, data []byte) error {
	return Write(target, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
