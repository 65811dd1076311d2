// internal/app/store/testimonials/testimonialstore.go
package testimonialstore

import (
	"context"
	"sort"

	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the testimonials collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new testimonial store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("testimonials")}
}

// Resolve defaults each field of a raw testimonial document at the
// record level. Rating passes through as stored; it is not clamped to
// the 1-5 range here.
func Resolve(raw bson.M) models.Testimonial {
	return models.Testimonial{
		ID:      storeutil.ID(raw),
		Name:    storeutil.Str(raw, "name", models.DefaultTestimonialName),
		Role:    storeutil.Str(raw, "role", ""),
		Content: storeutil.Str(raw, "content", ""),
		Rating:  storeutil.Int(raw, "rating", models.DefaultRating),
		Order:   storeutil.Int(raw, "order", models.DefaultItemOrder),
	}
}

// List returns all testimonials sorted ascending by order, stable on ties.
func (s *Store) List(ctx context.Context) ([]models.Testimonial, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}

	testimonials := make([]models.Testimonial, 0, len(raws))
	for _, raw := range raws {
		testimonials = append(testimonials, Resolve(raw))
	}
	sort.SliceStable(testimonials, func(i, j int) bool {
		return testimonials[i].Order < testimonials[j].Order
	})
	return testimonials, nil
}

// Get returns a single testimonial by id.
func (s *Store) Get(ctx context.Context, id string) (models.Testimonial, error) {
	var raw bson.M
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		return models.Testimonial{}, err
	}
	return Resolve(raw), nil
}

// Input holds the editable fields of a testimonial.
type Input struct {
	Name    string
	Role    string
	Content string
	Rating  int
	Order   int
}

// Add inserts a new testimonial with order equal to the current
// collection size.
func (s *Store) Add(ctx context.Context, input Input) (string, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	doc := bson.M{
		"_id":     id,
		"name":    input.Name,
		"role":    input.Role,
		"content": input.Content,
		"rating":  input.Rating,
		"order":   int(count),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the editable fields of a testimonial.
func (s *Store) Update(ctx context.Context, id string, input Input) error {
	update := bson.M{"$set": bson.M{
		"name":    input.Name,
		"role":    input.Role,
		"content": input.Content,
		"rating":  input.Rating,
		"order":   input.Order,
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

// Delete removes a testimonial by id.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of testimonials.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
