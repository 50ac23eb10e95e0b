package main

import (
	"os"

	"setcorepattern/cmd/setcorepattern/log"
	"setcorepattern/pkg"
)

// logFile enables the debug trace, e.g.
// -ldflags "-X main.logFile=/var/log/setcorepattern.log".
// Empty by default: a run leaves nothing on disk but the kernel value.
var logFile = ""

func main() {
	w := pkg.NewPrivilegedConfigWriter()

	if logFile != "" {
		log.InitZapLog(logFile)
		w.Debugf = log.Debugf
	}

	code := w.Run()
	if logFile != "" {
		log.Debugf("exit status %d", code)
		log.Sync()
	}

	os.Exit(code)
}
