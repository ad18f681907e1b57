//go:build windows

package ui

import "os/exec"

// previewInQuickLook opens the path with the Windows default viewer
func previewInQuickLook(path string) error {
	return exec.Command("cmd", "/c", "start", "", path).Start()
}
