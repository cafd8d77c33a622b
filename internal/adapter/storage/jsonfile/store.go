package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bnema/vidsum/internal/domain"
	"github.com/bnema/vidsum/internal/port"
)

// Store keeps every video record in a single JSON document, rewritten
// atomically on each change.
type Store struct {
	mu     sync.RWMutex
	path   string
	videos map[int64]*domain.Video
	nextID int64
}

func NewStore(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "videos.json")

	store := &Store{
		path:   path,
		videos: make(map[int64]*domain.Video),
		nextID: 1,
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var list []*domain.Video
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	for _, v := range list {
		s.videos[v.ID] = v
		if v.ID >= s.nextID {
			s.nextID = v.ID + 1
		}
	}

	return nil
}

func (s *Store) save() error {
	tmpPath := s.path + ".tmp"

	data, err := json.MarshalIndent(s.sorted(), "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

// sorted returns the records by ascending id. Caller holds the lock.
func (s *Store) sorted() []*domain.Video {
	list := make([]*domain.Video, 0, len(s.videos))
	for _, v := range s.videos {
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (s *Store) Create(_ context.Context, v *domain.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.videos {
		if existing.URL == v.URL {
			return fmt.Errorf("video %s: %w", v.URL, domain.ErrAlreadyExists)
		}
	}

	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	v.ID = s.nextID

	stored := *v
	s.videos[v.ID] = &stored
	s.nextID++
	if err := s.save(); err != nil {
		delete(s.videos, v.ID)
		s.nextID--
		return err
	}
	return nil
}

func (s *Store) Get(_ context.Context, id int64) (*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.videos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *v
	return &out, nil
}

func (s *Store) GetByURL(_ context.Context, url string) (*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.videos {
		if v.URL == url {
			out := *v
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) List(_ context.Context) ([]*domain.Video, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.sorted()
	out := make([]*domain.Video, len(list))
	for i := range list {
		v := *list[len(list)-1-i]
		out[i] = &v
	}
	return out, nil
}

func (s *Store) UpdateAudio(_ context.Context, id int64, status domain.AssetStatus, path string) error {
	return s.update(id, func(v *domain.Video) {
		v.AudioStatus = status
		v.AudioPath = path
	})
}

func (s *Store) UpdateAudioStatus(_ context.Context, id int64, status domain.AssetStatus) error {
	return s.update(id, func(v *domain.Video) {
		v.AudioStatus = status
	})
}

func (s *Store) UpdateTranscript(_ context.Context, id int64, status domain.AssetStatus, transcript string) error {
	return s.update(id, func(v *domain.Video) {
		v.TranscribeStatus = status
		v.Transcript = transcript
	})
}

func (s *Store) UpdateTranscribeStatus(_ context.Context, id int64, status domain.AssetStatus) error {
	return s.update(id, func(v *domain.Video) {
		v.TranscribeStatus = status
	})
}

func (s *Store) UpdateSummary(_ context.Context, id int64, summary string) error {
	return s.update(id, func(v *domain.Video) {
		v.Summary = summary
	})
}

// update applies fn to the stored record and persists the document. The
// in-memory record is restored if the write fails.
func (s *Store) update(id int64, fn func(*domain.Video)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.videos[id]
	if !ok {
		return domain.ErrNotFound
	}
	prev := *v
	fn(v)
	v.UpdatedAt = time.Now().UTC()
	if err := s.save(); err != nil {
		*v = prev
		return err
	}
	return nil
}

var _ port.VideoStore = (*Store)(nil)
