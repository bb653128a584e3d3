//go:build darwin

package launcher

import "github.com/hashicorp/go-hclog"

func platformLauncher(logger hclog.Logger) FolderLauncher {
	return &ForkExecOpen{Command: "/usr/bin/open", Logger: logger}
}
