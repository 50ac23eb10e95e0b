package log

import (
	"fmt"
	"log"
	"path"
	"runtime"
	"sync"

	"go.uber.org/zap"
)

var (
	logger   *zap.SugaredLogger
	initOnce sync.Once
)

// InitZapLog routes the debug trace into a rotated file. Only the first call
// with a non-empty name has any effect.
func InitZapLog(file string) {
	if file == "" {
		return
	}

	initOnce.Do(func() {
		logger = createZapLog(file, 10, 7, 3, true, zap.DebugLevel, 1)
	})
}

// Debugf writes one debug line. Before InitZapLog it goes to the std logger
// prefixed with the caller's file:line, so main only hands Debugf to the
// writer once the file log is set up.
func Debugf(template string, args ...interface{}) {
	if logger == nil {
		_, file, line, _ := runtime.Caller(1)
		log.Printf(fmt.Sprintf("%s:%d: ", path.Base(file), line)+template, args...)
		return
	}
	logger.Debugf(template, args...)
}

// Sync flushes buffered entries. Errors are dropped, the trace is best effort.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
