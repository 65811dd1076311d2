// internal/app/store/faqs/faqstore.go
package faqstore

import (
	"context"
	"sort"

	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the faqs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new FAQ store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("faqs")}
}

// Resolve defaults each field of a raw FAQ document at the record level.
func Resolve(raw bson.M) models.FAQ {
	return models.FAQ{
		ID:       storeutil.ID(raw),
		Question: storeutil.Str(raw, "question", models.DefaultFAQQuestion),
		Answer:   storeutil.Str(raw, "answer", ""),
		Order:    storeutil.Int(raw, "order", models.DefaultItemOrder),
	}
}

// List returns all FAQs sorted ascending by order, stable on ties.
func (s *Store) List(ctx context.Context) ([]models.FAQ, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}

	faqs := make([]models.FAQ, 0, len(raws))
	for _, raw := range raws {
		faqs = append(faqs, Resolve(raw))
	}
	sort.SliceStable(faqs, func(i, j int) bool {
		return faqs[i].Order < faqs[j].Order
	})
	return faqs, nil
}

// Get returns a single FAQ by id.
func (s *Store) Get(ctx context.Context, id string) (models.FAQ, error) {
	var raw bson.M
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		return models.FAQ{}, err
	}
	return Resolve(raw), nil
}

// Input holds the editable fields of a FAQ.
type Input struct {
	Question string
	Answer   string
	Order    int
}

// Add inserts a new FAQ with order equal to the current collection size.
func (s *Store) Add(ctx context.Context, input Input) (string, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	doc := bson.M{
		"_id":      id,
		"question": input.Question,
		"answer":   input.Answer,
		"order":    int(count),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the editable fields of a FAQ.
func (s *Store) Update(ctx context.Context, id string, input Input) error {
	update := bson.M{"$set": bson.M{
		"question": input.Question,
		"answer":   input.Answer,
		"order":    input.Order,
	}}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a FAQ by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of FAQs.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
