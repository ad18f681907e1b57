package model

import (
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one filesystem entry yielded by the walker. Depth is
// relative to the scan root (a direct child of the root has depth 1).
type Entry struct {
	Path  string
	Name  string
	Depth int
	Size  int64 // files only
	IsDir bool
}

// BuildIndex turns flat walk output into the ordered node sequence and
// aggregate stats. The scan root itself is always node 0 at depth 0.
// Directories become nodes; files are only counted.
func BuildIndex(root string, entries []Entry) *Index {
	idx := &Index{Root: root}
	idx.Stats.TotalDirs = 1 // the root

	dirs := make([]Entry, 0, len(entries)/4+1)
	for _, e := range entries {
		if e.Depth > idx.Stats.MaxDepth {
			idx.Stats.MaxDepth = e.Depth
		}
		if e.IsDir {
			idx.Stats.TotalDirs++
			dirs = append(dirs, e)
		} else {
			idx.Stats.TotalFiles++
			idx.Stats.TotalSize += e.Size
		}
	}

	// The parallel walk delivers entries in arbitrary order. Sorting by
	// path segments restores a pre-order traversal: a directory sorts
	// before everything in its subtree, and subtrees stay contiguous.
	// Plain string order would not ("a!" sorts between "a" and "a/x").
	sort.Slice(dirs, func(i, j int) bool {
		return comparePaths(dirs[i].Path, dirs[j].Path) < 0
	})

	idx.Nodes = make([]Node, 0, len(dirs)+1)
	idx.Nodes = append(idx.Nodes, Node{
		Path:  root,
		Name:  filepath.Base(root),
		IsDir: true,
	})
	for _, e := range dirs {
		idx.Nodes = append(idx.Nodes, Node{
			Path:  e.Path,
			Name:  e.Name,
			IsDir: true,
			Depth: e.Depth,
		})
	}

	computeLastSiblings(idx.Nodes)
	return idx
}

// comparePaths orders paths segment by segment, so a parent always
// compares less than its descendants.
func comparePaths(a, b string) int {
	sep := string(filepath.Separator)
	as := strings.Split(a, sep)
	bs := strings.Split(b, sep)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	return len(as) - len(bs)
}

// computeLastSiblings marks each node that has no later sibling under
// the same parent. A node stops being a candidate as soon as a node of
// lesser depth appears, since that leaves the subtree. Quadratic over
// the directory count; runs once per build.
func computeLastSiblings(nodes []Node) {
	for i := range nodes {
		parent := filepath.Dir(nodes[i].Path)
		last := true
		for j := i + 1; j < len(nodes); j++ {
			if nodes[j].Depth < nodes[i].Depth {
				break
			}
			if nodes[j].Depth == nodes[i].Depth && filepath.Dir(nodes[j].Path) == parent {
				last = false
				break
			}
		}
		nodes[i].IsLastSibling = last
	}
}

// AncestorAt walks up the given number of path segments.
func AncestorAt(path string, steps int) string {
	for i := 0; i < steps; i++ {
		path = filepath.Dir(path)
	}
	return path
}
