// internal/app/store/consultations/consultationstore.go
package consultationstore

import (
	"context"
	"time"

	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the consultations collection, which keeps a
// record of accepted consultation-form submissions for the admin
// dashboard.
type Store struct {
	c *mongo.Collection
}

// New creates a new consultation store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("consultations")}
}

// Insert records a submission and returns its generated reference.
func (s *Store) Insert(ctx context.Context, c models.Consultation) (string, error) {
	c.ID = primitive.NewObjectID()
	if c.Reference == "" {
		c.Reference = uuid.NewString()
	}
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, c); err != nil {
		return "", err
	}
	return c.Reference, nil
}

// Recent returns the most recent submissions, newest first.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.Consultation, error) {
	if limit <= 0 {
		limit = 10
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Consultation
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of recorded submissions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
