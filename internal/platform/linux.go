package platform

import (
	"path/filepath"
)

type linuxManager struct {
	goos string
}

func newLinuxManager(goos string) Manager {
	return &linuxManager{goos: goos}
}

func (m *linuxManager) Name() string {
	return m.goos
}

func (m *linuxManager) FontDirs(env Env) []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
	}

	if env.Home != "" {
		dirs = append(dirs,
			filepath.Join(env.Home, ".fonts"),
			filepath.Join(env.Home, ".local/share/fonts"),
		)
	}

	if env.XDGDataHome != "" {
		dirs = append(dirs, filepath.Join(env.XDGDataHome, "fonts"))
	}

	return dirs
}

func (m *linuxManager) Recursive() bool {
	return true
}
