//go:build unix && !darwin

package launcher

import "github.com/hashicorp/go-hclog"

func platformLauncher(logger hclog.Logger) FolderLauncher {
	return &ForkExecOpen{Command: "xdg-open", Logger: logger}
}
