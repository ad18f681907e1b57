//go:build !windows && !darwin

package ui

import "os/exec"

// previewInQuickLook opens the path with xdg-open on Linux
func previewInQuickLook(path string) error {
	return exec.Command("xdg-open", path).Start()
}
