package platform

import (
	"path/filepath"
)

type darwinManager struct{}

func newDarwinManager() Manager {
	return &darwinManager{}
}

func (m *darwinManager) Name() string {
	return "darwin"
}

func (m *darwinManager) FontDirs(env Env) []string {
	dirs := []string{
		"/System/Library/Fonts",
		"/Library/Fonts",
	}

	if env.Home != "" {
		dirs = append(dirs, filepath.Join(env.Home, "Library/Fonts"))
	}

	return dirs
}

func (m *darwinManager) Recursive() bool {
	return true
}
