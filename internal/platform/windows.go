package platform

type windowsManager struct{}

func newWindowsManager() Manager {
	return &windowsManager{}
}

func (m *windowsManager) Name() string {
	return "windows"
}

// FontDirs builds Windows paths by hand so the result does not depend on the
// separator of the host running the code.
func (m *windowsManager) FontDirs(env Env) []string {
	var dirs []string
	if env.WinDir != "" {
		dirs = append(dirs, env.WinDir+`\Fonts`)
	}
	return append(dirs, "C:/Windows/Fonts")
}

// Windows keeps every installed font directly in the Fonts folder.
func (m *windowsManager) Recursive() bool {
	return false
}
