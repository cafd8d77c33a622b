package port

import (
	"context"

	"github.com/bnema/vidsum/internal/domain"
)

// VideoStore persists video records. Every Update* method writes only the
// columns it names, in a single atomic statement, so concurrent edits to
// other columns are preserved.
type VideoStore interface {
	Create(ctx context.Context, v *domain.Video) error
	Get(ctx context.Context, id int64) (*domain.Video, error)
	GetByURL(ctx context.Context, url string) (*domain.Video, error)
	List(ctx context.Context) ([]*domain.Video, error)

	UpdateAudio(ctx context.Context, id int64, status domain.AssetStatus, path string) error
	UpdateAudioStatus(ctx context.Context, id int64, status domain.AssetStatus) error
	UpdateTranscript(ctx context.Context, id int64, status domain.AssetStatus, transcript string) error
	UpdateTranscribeStatus(ctx context.Context, id int64, status domain.AssetStatus) error
	UpdateSummary(ctx context.Context, id int64, summary string) error
}
