package scanner

import (
	"context"

	"github.com/lumipallolabs/sprout/internal/model"
)

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan walks the given root path and returns the ordered
	// directory index
	Scan(ctx context.Context, root string) (*model.Index, error)
}
