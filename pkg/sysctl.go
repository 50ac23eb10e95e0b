package pkg

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type ConfigWriter interface {
	Open(path string) (io.WriteCloser, error)
}

// ProcSys opens kernel control files write-only. Missing files are an error, not created.
type ProcSys struct{}

func (ProcSys) Open(path string) (io.WriteCloser, error) {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return &procFile{fd: fd, path: path}, nil
}

// procFile is a raw descriptor. Unlike *os.File, Write issues a single
// write(2) and hands back whatever count the kernel returned.
type procFile struct {
	fd   int
	path string
}

func (f *procFile) Write(p []byte) (int, error) {
	n, err := unix.Write(f.fd, p)
	if err != nil {
		return 0, &os.PathError{Op: "write", Path: f.path, Err: err}
	}
	return n, nil
}

func (f *procFile) Close() error {
	if err := unix.Close(f.fd); err != nil {
		return &os.PathError{Op: "close", Path: f.path, Err: err}
	}
	return nil
}

// writeSetting performs exactly one Write of s.Value. A short write is
// reported as io.ErrShortWrite and is not retried.
func writeSetting(f io.Writer, s Setting) error {
	n, err := f.Write([]byte(s.Value))
	if err == nil && n < len(s.Value) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return withKind(ErrWrite, err)
	}
	return nil
}

func openSetting(cw ConfigWriter, s Setting) (io.WriteCloser, error) {
	f, err := cw.Open(s.Path)
	if err != nil {
		return nil, withKind(ErrOpen, err)
	}
	return f, nil
}

// closeSetting releases the handle. Close failures are returned for the debug
// log only; they never change the outcome of a run.
func closeSetting(f io.Closer, s Setting) error {
	return errors.Wrapf(f.Close(), "close %s", s.Path)
}
