package core

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// PreviewEntry is one immediate child of the selected directory.
type PreviewEntry struct {
	Name  string
	IsDir bool
	Size  int64
	Kind  string // detected file type, best effort, "" for dirs
}

// PreviewLoader lists the selected directory's children for the side
// panel. The listing is rebuilt wholesale on every selection change
// and scrolls independently of the tree viewport.
type PreviewLoader struct {
	path    string
	entries []PreviewEntry
	offset  int
}

// NewPreviewLoader creates an empty preview.
func NewPreviewLoader() *PreviewLoader {
	return &PreviewLoader{}
}

// Load replaces the listing with the immediate children of path.
// Children that fail to stat are kept with size 0 so the count always
// matches the raw directory read. Directories sort before files; each
// group is lexicographic by name. An unreadable directory yields an
// empty listing, not an error.
func (p *PreviewLoader) Load(path string) {
	p.path = path
	p.offset = 0
	p.entries = nil

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return
	}

	p.entries = make([]PreviewEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := PreviewEntry{
			Name:  de.Name(),
			IsDir: de.IsDir(),
		}
		if info, err := de.Info(); err == nil {
			e.Size = info.Size()
		}
		if !e.IsDir {
			e.Kind = detectKind(filepath.Join(path, de.Name()))
		}
		p.entries = append(p.entries, e)
	}

	sort.Slice(p.entries, func(i, j int) bool {
		if p.entries[i].IsDir != p.entries[j].IsDir {
			return p.entries[i].IsDir
		}
		return p.entries[i].Name < p.entries[j].Name
	})
}

// Clear empties the listing.
func (p *PreviewLoader) Clear() {
	p.path = ""
	p.entries = nil
	p.offset = 0
}

// Path returns the directory the current listing was loaded from.
func (p *PreviewLoader) Path() string {
	return p.path
}

// Entries returns the sorted listing.
func (p *PreviewLoader) Entries() []PreviewEntry {
	return p.entries
}

// Offset returns the preview's scroll offset.
func (p *PreviewLoader) Offset() int {
	return p.offset
}

// ScrollUp scrolls the preview one line towards the top.
func (p *PreviewLoader) ScrollUp() {
	if p.offset > 0 {
		p.offset--
	}
}

// ScrollDown scrolls one line towards the bottom. The clamp is len-1,
// not len-height like the tree viewport, so the last entry can be
// brought all the way to the top row.
func (p *PreviewLoader) ScrollDown() {
	maxScroll := len(p.entries) - 1
	if maxScroll < 0 {
		maxScroll = 0
	}
	if p.offset < maxScroll {
		p.offset++
	}
}

// detectKind returns an upper-cased extension for the detected content
// type, or "" when detection fails.
func detectKind(path string) string {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return ""
	}
	ext := mtype.Extension()
	if ext == "" {
		return ""
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}
