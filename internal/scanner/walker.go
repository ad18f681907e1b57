package scanner

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/lumipallolabs/sprout/internal/logging"
	"github.com/lumipallolabs/sprout/internal/model"
)

// Walker implements parallel filesystem scanning
type Walker struct {
	workers int
}

// NewWalker creates a new parallel filesystem walker
func NewWalker(workers int) *Walker {
	if workers < 1 {
		workers = 8
	}
	return &Walker{workers: workers}
}

// Scan walks root with fastwalk and builds the ordered index. Entries
// that error during traversal (permission denied, deleted mid-walk)
// are skipped; the scan itself only fails on a bad root path or
// cancellation.
func (w *Walker) Scan(ctx context.Context, root string) (*model.Index, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	// Use a channel for lock-free entry collection
	entryChan := make(chan model.Entry, 4096)
	var entries []model.Entry
	var entriesWg sync.WaitGroup

	entriesWg.Add(1)
	go func() {
		defer entriesWg.Done()
		for e := range entryChan {
			entries = append(entries, e)
		}
	}()

	// Seen inodes, so hard-linked files are counted once
	var seenItems sync.Map

	conf := &fastwalk.Config{
		Follow:     false, // don't follow symlinks
		NumWorkers: w.workers,
	}

	sep := string(filepath.Separator)
	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			if path == absRoot {
				return err // unreadable root is fatal
			}
			return nil // skip entries with errors
		}

		// The root is synthesized by BuildIndex, not walked
		if path == absRoot {
			return nil
		}

		var size int64
		if !d.IsDir() {
			if info, err := d.Info(); err == nil {
				size = fileSize(info, &seenItems)
				if size < 0 {
					return nil // hard link already counted
				}
			}
			// Metadata failures degrade to size 0, never an error
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		entryChan <- model.Entry{
			Path:  path,
			Name:  d.Name(),
			Depth: strings.Count(rel, sep) + 1,
			Size:  size,
			IsDir: d.IsDir(),
		}

		return nil
	})

	close(entryChan)
	entriesWg.Wait()

	if walkErr != nil {
		return nil, walkErr
	}

	idx := model.BuildIndex(absRoot, entries)
	logging.Debug.Printf("[Walker] scanned %s: %d dirs, %d files, max depth %d",
		absRoot, idx.Stats.TotalDirs, idx.Stats.TotalFiles, idx.Stats.MaxDepth)
	return idx, nil
}

// Ensure Walker implements Scanner
var _ Scanner = (*Walker)(nil)
