package pkg

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePrivilege bool

func (p fakePrivilege) IsPrivileged() bool { return bool(p) }

// fakeFile records what is written and how often it is closed.
type fakeFile struct {
	buf      bytes.Buffer
	writes   int
	closes   int
	writeN   int // bytes reported per write when >= 0 and writeErr is nil
	writeErr error
	closeErr error
}

func (f *fakeFile) Write(p []byte) (int, error) {
	f.writes++
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	if f.writeN >= 0 && f.writeN < len(p) {
		f.buf.Write(p[:f.writeN])
		return f.writeN, nil
	}
	return f.buf.Write(p)
}

func (f *fakeFile) Close() error {
	f.closes++
	return f.closeErr
}

type fakeFS struct {
	t       *testing.T
	file    *fakeFile
	openErr error
	opened  []string
	deny    bool
}

func (fs *fakeFS) Open(path string) (io.WriteCloser, error) {
	require.False(fs.t, fs.deny, "target opened without privilege")
	fs.opened = append(fs.opened, path)
	if fs.openErr != nil {
		return nil, fs.openErr
	}
	return fs.file, nil
}

func newFakeWriter(t *testing.T, privileged bool, fs *fakeFS) (*PrivilegedConfigWriter, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &PrivilegedConfigWriter{
		Privilege: fakePrivilege(privileged),
		FS:        fs,
		Target:    CorePattern,
		Stdout:    &stdout,
		Stderr:    &stderr,
		Debugf:    t.Logf,
	}, &stdout, &stderr
}
