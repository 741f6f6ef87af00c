package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// WriteFileAtomic writes data to a uniquely named temp file in the target's
// directory and renames it over path, so readers never observe a partial
// write. The temp file is removed on failure.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// ReplaceFile atomically replaces path with data, keeping the previous
// contents at path.bak. An advisory lock serializes invocations that target
// the same file so two concurrent runs cannot interleave backup and rename.
func ReplaceFile(path string, data []byte, mode os.FileMode) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("lock %s: held by another invocation", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if err := os.Rename(path, path+".bak"); err != nil {
			_ = os.Remove(tmp)
			return fmt.Errorf("back up %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		_ = os.Remove(tmp)
		return err
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
