//go:build darwin

package ui

import "os/exec"

// previewInQuickLook opens the path in macOS Quick Look
func previewInQuickLook(path string) error {
	return exec.Command("qlmanage", "-p", path).Start()
}
