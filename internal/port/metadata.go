package port

import (
	"context"

	"github.com/bnema/vidsum/internal/domain"
)

// MetadataLookup fetches platform metadata for a submitted video URL. It
// returns domain.ErrNoMetadata when the URL is not one it can resolve or the
// platform knows no such video.
type MetadataLookup interface {
	Lookup(ctx context.Context, url string) (*domain.VideoMetadata, error)
}
