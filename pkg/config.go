package pkg

const (
	CorePatternPath  = "/proc/sys/kernel/core_pattern"
	CorePatternValue = "core\n"
)

// Setting is a kernel control file under /proc/sys and the value written to it.
// The file is created by the kernel, never by us.
type Setting struct {
	Path  string
	Value string
}

// CorePattern names core dumps plainly "core" in the crashing process's cwd.
var CorePattern = Setting{
	Path:  CorePatternPath,
	Value: CorePatternValue,
}
