// internal/app/store/services/servicestore.go
package servicestore

import (
	"context"
	"sort"

	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the services collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new service store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("services")}
}

// Resolve defaults each field of a raw service document at the record
// level. Malformed fields never fail the record.
func Resolve(raw bson.M) models.Service {
	return models.Service{
		ID:          storeutil.ID(raw),
		Title:       storeutil.Str(raw, "title", models.DefaultServiceTitle),
		Description: storeutil.Str(raw, "description", ""),
		Items:       storeutil.StrSlice(raw, "items", []string{}),
		Order:       storeutil.Int(raw, "order", models.DefaultItemOrder),
	}
}

// List returns all services sorted ascending by order. The sort is
// stable, so items with equal order keep their retrieval order.
// An empty collection returns an empty slice, not an error.
func (s *Store) List(ctx context.Context) ([]models.Service, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raws []bson.M
	if err := cur.All(ctx, &raws); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(raws))
	for _, raw := range raws {
		services = append(services, Resolve(raw))
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Order < services[j].Order
	})
	return services, nil
}

// Get returns a single service by id.
func (s *Store) Get(ctx context.Context, id string) (models.Service, error) {
	var raw bson.M
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&raw); err != nil {
		return models.Service{}, err
	}
	return Resolve(raw), nil
}

// Input holds the editable fields of a service.
type Input struct {
	Title       string
	Description string
	Items       []string
	Order       int
}

// Add inserts a new service at the end of the display sequence: its
// order is the current collection size.
func (s *Store) Add(ctx context.Context, input Input) (string, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}

	id := primitive.NewObjectID().Hex()
	doc := bson.M{
		"_id":         id,
		"title":       input.Title,
		"description": input.Description,
		"items":       input.Items,
		"order":       int(count),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

// Update replaces the editable fields of a service. Order comes from
// the submitted form state.
func (s *Store) Update(ctx context.Context, id string, input Input) error {
	update := bson.M{"$set": bson.M{
		"title":       input.Title,
		"description": input.Description,
		"items":       input.Items,
		"order":       input.Order,
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

// Delete removes a service by id. Deletion is immediate and
// unrecoverable at the application layer.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of services.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
