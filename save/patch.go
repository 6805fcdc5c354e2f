package save

import (
	"io"
	"os"

	"crafto-editor/save/lbytes"
	"github.com/pkg/errors"
)

// WriteField overwrites the FieldSize bytes at offset with value. size is the
// current length of the target, used only for the bounds check.
func WriteField(w io.WriterAt, size int64, offset int64, value float64) error {
	if offset < 0 || offset+FieldSize > size {
		return errors.Wrapf(
			ErrOutOfRange,
			"WriteField error: %d bytes at offset %d, size %d",
			FieldSize, offset, size,
		)
	}
	_, err := w.WriteAt(lbytes.EncodeValueDouble(value), offset)
	if err != nil {
		return errors.Wrapf(err, "WriteField error at offset %d", offset)
	}
	return nil
}

// PatchFile writes value in place at offset. The offset must come from
// locating the field in the current contents of path. No retry or rollback
// is attempted when the write fails.
func PatchFile(path string, offset int64, value float64) (err error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrapf(err, `PatchFile error opening "%s"`, path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, `PatchFile error closing "%s"`, path)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return errors.Wrapf(err, `PatchFile error reading size of "%s"`, path)
	}
	if err := WriteField(f, info.Size(), offset, value); err != nil {
		return errors.Wrapf(err, `PatchFile error patching "%s"`, path)
	}
	return nil
}

// BackupFile copies path to path + ".bak", replacing an older backup.
func BackupFile(path string) (backupPath string, err error) {
	backupPath = path + ".bak"
	src, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, `BackupFile error opening "%s"`, path)
	}
	defer src.Close()

	dst, err := os.Create(backupPath)
	if err != nil {
		return "", errors.Wrapf(err, `BackupFile error creating "%s"`, backupPath)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			_ = os.Remove(backupPath)
			backupPath = ""
			err = errors.Wrapf(closeErr, `BackupFile error closing "%s"`, path+".bak")
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		// a partial copy must not pass for a backup
		_ = dst.Close()
		_ = os.Remove(backupPath)
		return "", errors.Wrapf(err, `BackupFile error copying to "%s"`, backupPath)
	}
	return backupPath, nil
}
