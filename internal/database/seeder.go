// internal/database/seeder.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"sports-health-centers-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SeedCentersFromFile upserts every record of a JSON dataset file into coll,
// keyed by its id. Documents keep the exact keys of the file.
func SeedCentersFromFile(ctx context.Context, coll *mongo.Collection, path string, log *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("seed centers: read %q: %w", path, err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("seed centers: parse json: %w", err)
	}

	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return 0, fmt.Errorf("seed centers: create id index: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	for i, raw := range records {
		c, doc, err := CenterDocument(raw)
		if err != nil {
			return i, fmt.Errorf("seed centers: record %d: %w", i, err)
		}
		if _, dup := seen[c.ID]; dup {
			return i, fmt.Errorf("seed centers: record %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		_, err = coll.ReplaceOne(ctx, bson.M{"id": c.ID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return i, fmt.Errorf("seed centers: upsert id=%s: %w", c.ID, err)
		}
		log.Debug("center_seeded", "id", c.ID)
	}

	log.Info("centers_seeded", "count", len(records), "collection", coll.Name())
	return len(records), nil
}

// CenterDocument converts one dataset record into the BSON document stored
// for it. Keys and coordinate forms (string or number) are kept as in the file.
func CenterDocument(raw json.RawMessage) (models.Center, bson.D, error) {
	var c models.Center
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, nil, err
	}
	if c.ID == "" {
		return c, nil, errors.New("id cannot be empty")
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return c, nil, fmt.Errorf("convert to bson: %w", err)
	}
	return c, doc, nil
}
