package platform

import (
	"os"
	"runtime"
)

// Env holds the environment-derived roots used to build candidate font
// directories. Empty fields are skipped.
type Env struct {
	WinDir      string // Windows directory, usually %WINDIR%
	Home        string // User home directory, usually $HOME
	XDGDataHome string // XDG data directory, usually $XDG_DATA_HOME
}

// EnvFromOS reads Env from the process environment
func EnvFromOS() Env {
	return Env{
		WinDir:      os.Getenv("WINDIR"),
		Home:        os.Getenv("HOME"),
		XDGDataHome: os.Getenv("XDG_DATA_HOME"),
	}
}

// Manager describes where a platform keeps its fonts
type Manager interface {
	// Name returns the GOOS this manager was built for
	Name() string

	// FontDirs returns the candidate font directories in search order.
	// Env values are expected to be validated by the caller.
	FontDirs(env Env) []string

	// Recursive reports whether candidate directories are searched as
	// whole subtrees or only by their immediate entries
	Recursive() bool
}

// New returns the manager for the running platform
func New() Manager {
	return ForOS(runtime.GOOS)
}

// ForOS returns the manager for the given GOOS. Unknown systems get the
// Linux layout.
func ForOS(goos string) Manager {
	switch goos {
	case "windows":
		return newWindowsManager()
	case "darwin", "ios":
		return newDarwinManager()
	}
	return newLinuxManager(goos)
}
