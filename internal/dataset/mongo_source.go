// internal/dataset/mongo_source.go
package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"sports-health-centers-api/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads every document of a collection, in _id order.
type MongoSource struct {
	Collection *mongo.Collection
}

func (m MongoSource) Describe() string {
	return "mongo " + m.Collection.Database().Name() + "." + m.Collection.Name()
}

func (m MongoSource) Load(ctx context.Context) ([]models.Center, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := m.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find centers: %w", err)
	}
	defer cursor.Close(ctx)

	centers := make([]models.Center, 0, 256)
	for cursor.Next(ctx) {
		c, err := DecodeDocument(cursor.Current)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(centers), err)
		}
		centers = append(centers, c)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate centers: %w", err)
	}

	return centers, nil
}

// DecodeDocument converts a stored center document. It goes through relaxed
// extended JSON so a stored document uses the same keys, and keeps the same
// coordinate forms, as the JSON file.
func DecodeDocument(doc bson.Raw) (models.Center, error) {
	var c models.Center
	data, err := bson.MarshalExtJSON(doc, false, false)
	if err != nil {
		return c, fmt.Errorf("convert to json: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode center: %w", err)
	}
	return c, nil
}
