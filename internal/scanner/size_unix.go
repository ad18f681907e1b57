//go:build !windows

package scanner

import (
	"io/fs"
	"sync"
	"syscall"
)

// fileSize returns the file's size in bytes, or -1 when the entry is a
// hard link whose inode was already counted.
func fileSize(info fs.FileInfo, seenItems *sync.Map) int64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.Size()
	}

	if stat.Nlink > 1 {
		if _, exists := seenItems.LoadOrStore(stat.Ino, true); exists {
			return -1
		}
	}

	return info.Size()
}
