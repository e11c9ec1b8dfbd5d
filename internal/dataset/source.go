// internal/dataset/source.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"sports-health-centers-api/internal/models"
)

// Source produces the raw center records at startup.
type Source interface {
	Load(ctx context.Context) ([]models.Center, error)
	// Describe names the source in logs.
	Describe() string
}

// Load reads every record from src and builds the frozen Store.
func Load(ctx context.Context, src Source) (*Store, error) {
	centers, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", src.Describe(), err)
	}
	store, err := NewStore(centers)
	if err != nil {
		return nil, fmt.Errorf("load dataset from %s: %w", src.Describe(), err)
	}
	return store, nil
}

// Decode parses a JSON array of centers.
func Decode(r io.Reader) ([]models.Center, error) {
	var centers []models.Center
	dec := json.NewDecoder(r)
	if err := dec.Decode(&centers); err != nil {
		return nil, fmt.Errorf("decode centers: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("decode centers: trailing data after JSON array")
	}
	if centers == nil {
		return nil, fmt.Errorf("decode centers: document is null")
	}
	return centers, nil
}

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	Path string
}

func (f FileSource) Describe() string { return "file " + f.Path }

func (f FileSource) Load(_ context.Context) ([]models.Center, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}
