//go:build !unix && !windows

package launcher

import (
	"runtime"

	"github.com/hashicorp/go-hclog"
)

func platformLauncher(hclog.Logger) FolderLauncher {
	return &Unsupported{GOOS: runtime.GOOS}
}
