//go:build windows

package main

import "golang.org/x/sys/windows"

const utf8CodePage = 65001

// setupConsole switches console output to UTF-8 so localized messages
// render correctly.
func setupConsole() {
	_ = windows.SetConsoleOutputCP(utf8CodePage)
}
