package pkg

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/sanity-io/litter"
)

const (
	exitOK      = 0
	exitFailure = 1
)

// PrivilegedConfigWriter sets one kernel value after checking the caller is root.
// Every failure is terminal; nothing is retried and the previous value is not restored.
type PrivilegedConfigWriter struct {
	Privilege PrivilegeChecker
	FS        ConfigWriter
	Target    Setting

	Stdout io.Writer
	Stderr io.Writer

	// Debugf receives the debug trace. Nil disables it.
	Debugf func(template string, args ...interface{})
}

// NewPrivilegedConfigWriter returns a writer for core_pattern backed by the real OS.
func NewPrivilegedConfigWriter() *PrivilegedConfigWriter {
	return &PrivilegedConfigWriter{
		Privilege: EffectiveUID{},
		FS:        ProcSys{},
		Target:    CorePattern,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// Run returns the process exit status: 0 on success, 1 on any failure.
func (w *PrivilegedConfigWriter) Run() int {
	w.debugf("target: %s", litter.Sdump(w.Target))

	if err := w.set(); err != nil {
		w.debugf("set %s error: %+v", w.Target.Path, err)
		fmt.Fprintln(w.Stderr, w.diagnostic(err))
		return exitFailure
	}

	fmt.Fprintf(w.Stdout, "Successfully set %s to '%s'\n",
		path.Base(w.Target.Path), strings.TrimSuffix(w.Target.Value, "\n"))
	return exitOK
}

func (w *PrivilegedConfigWriter) set() error {
	if !w.Privilege.IsPrivileged() {
		return ErrInsufficientPrivilege
	}

	f, err := openSetting(w.FS, w.Target)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeSetting(f, w.Target); err != nil {
			w.debugf("ignoring close error: %s", err.Error())
		}
	}()

	return writeSetting(f, w.Target)
}

func (w *PrivilegedConfigWriter) diagnostic(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientPrivilege):
		return "Error: This program must be run as root."
	case errors.Is(err, ErrOpen):
		return fmt.Sprintf("Error opening %s: %s", w.Target.Path, osErrorText(err))
	case errors.Is(err, ErrWrite):
		return fmt.Sprintf("Error writing to %s: %s", w.Target.Path, osErrorText(err))
	default:
		return "Error: " + err.Error()
	}
}

func (w *PrivilegedConfigWriter) debugf(template string, args ...interface{}) {
	if w.Debugf != nil {
		w.Debugf(template, args...)
	}
}

// osErrorText drops the "open <path>:" prefix of *os.PathError since the
// diagnostic already names the path.
func osErrorText(err error) string {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return errors.Cause(err).Error()
}
