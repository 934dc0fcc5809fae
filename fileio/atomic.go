// Package fileio writes output files all-or-nothing: content goes to a temp
// file next to the target and is renamed into place only after a clean close.
package fileio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/andareed/siftly-peaks/faults"
)

func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return faults.IO("create", err, path)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return faults.IO("write", err, path)
	}
	if err = tmp.Sync(); err != nil {
		return faults.IO("sync", err, path)
	}
	if err = tmp.Close(); err != nil {
		return faults.IO("close", err, path)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return faults.IO("chmod", err, path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return faults.IO("rename", err, path)
	}
	return nil
}
