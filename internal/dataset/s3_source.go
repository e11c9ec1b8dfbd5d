// internal/dataset/s3_source.go
package dataset

import (
	"context"
	"io"

	"sports-health-centers-api/internal/models"
)

// ObjectOpener streams an object from a bucket.
type ObjectOpener interface {
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// S3Source reads the same JSON document as FileSource from an S3 object.
type S3Source struct {
	Objects ObjectOpener
	Bucket  string
	Key     string
}

func (s S3Source) Describe() string { return "s3://" + s.Bucket + "/" + s.Key }

func (s S3Source) Load(ctx context.Context) ([]models.Center, error) {
	body, err := s.Objects.Open(ctx, s.Key)
	if err != nil {
		return nil, err
	}
	defer body.Close()
	return Decode(body)
}
