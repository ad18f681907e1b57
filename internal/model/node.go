package model

// Node is a directory retained in the visualized tree. Files never
// become nodes; they only contribute to Stats.
type Node struct {
	Path          string
	Name          string
	IsDir         bool
	Depth         int // path segments below the scan root
	IsLastSibling bool
}

// Stats aggregates everything the walk saw, files included.
type Stats struct {
	TotalFiles int
	TotalDirs  int
	TotalSize  int64 // best effort: entries that fail to stat count 0
	MaxDepth   int
}

// Index is the ordered directory tree: a pre-order sequence of nodes
// plus the aggregate stats. It is built once at startup and never
// mutated afterwards. Other components refer to nodes by position in
// Nodes, not by pointer.
type Index struct {
	Root  string
	Nodes []Node
	Stats Stats
}

// Len returns the number of directory nodes in the index.
func (idx *Index) Len() int {
	return len(idx.Nodes)
}

// At returns the node at position i.
func (idx *Index) At(i int) Node {
	return idx.Nodes[i]
}
