// internal/dataset/store.go
package dataset

import (
	"errors"
	"fmt"

	"sports-health-centers-api/internal/models"
)

var (
	ErrNotFound          = errors.New("center not found")
	ErrDuplicateID       = errors.New("duplicate center id")
	ErrInvalidCoordinate = errors.New("invalid center coordinate")
)

// point is a center's parsed position, computed once at load.
type point struct {
	lat, lng float64
}

// Store is the in-memory, read-only center collection. It is built once by
// NewStore and never modified afterwards, so it is safe for concurrent use
// without locking.
type Store struct {
	centers []models.Center
	points  []point
	byID    map[string]int
}

// NewStore validates the records and freezes them in load order.
func NewStore(centers []models.Center) (*Store, error) {
	s := &Store{
		centers: make([]models.Center, len(centers)),
		points:  make([]point, len(centers)),
		byID:    make(map[string]int, len(centers)),
	}
	copy(s.centers, centers)

	for i, c := range s.centers {
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("record %d: %w: %q", i, ErrDuplicateID, c.ID)
		}
		s.byID[c.ID] = i

		lat, err := c.Lat.Float()
		if err != nil {
			return nil, fmt.Errorf("record %d (id %q) lat %s: %w: %v", i, c.ID, c.Lat.String(), ErrInvalidCoordinate, err)
		}
		lng, err := c.Lng.Float()
		if err != nil {
			return nil, fmt.Errorf("record %d (id %q) lng %s: %w: %v", i, c.ID, c.Lng.String(), ErrInvalidCoordinate, err)
		}
		s.points[i] = point{lat: lat, lng: lng}
	}

	return s, nil
}

// All returns the collection in load order. Callers must not modify it.
func (s *Store) All() []models.Center { return s.centers }

func (s *Store) Count() int { return len(s.centers) }

// GetByID returns the center with the given id or ErrNotFound.
func (s *Store) GetByID(id string) (models.Center, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Center{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.centers[i], nil
}

// Position returns the parsed coordinates of the i-th center.
func (s *Store) Position(i int) (lat, lng float64) {
	p := s.points[i]
	return p.lat, p.lng
}

// Page returns the [offset, offset+limit) window of the collection,
// clipped to its bounds. It never returns nil.
func (s *Store) Page(limit, offset int) []models.Center {
	if offset < 0 || offset >= len(s.centers) || limit <= 0 {
		return []models.Center{}
	}
	end := offset + limit
	if end > len(s.centers) {
		end = len(s.centers)
	}
	return s.centers[offset:end]
}
