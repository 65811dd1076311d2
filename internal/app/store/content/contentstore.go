// internal/app/store/content/contentstore.go
package contentstore

import (
	"context"
	"time"

	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the content collection, which holds the
// singleton documents (hero, home, contact, about, privacy) keyed by a
// fixed string _id.
type Store struct {
	c *mongo.Collection
}

// New creates a new content store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("content")}
}

// GetRaw returns the raw field map for a singleton document.
// A missing document is reported via the bool, never as an error.
func (s *Store) GetRaw(ctx context.Context, docID string) (bson.M, bool, error) {
	var raw bson.M
	err := s.c.FindOne(ctx, bson.M{"_id": docID}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

// Upsert writes the given fields to a singleton document, creating it
// on first save. Merge-on-write: fields not in the map are left
// untouched. updatedAt is always set server-side.
func (s *Store) Upsert(ctx context.Context, docID string, fields bson.M) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		if k == "_id" || k == "updatedAt" {
			continue
		}
		set[k] = v
	}

	filter := bson.M{"_id": docID}
	update := bson.M{"$set": set}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Exists checks if a singleton document has been saved.
func (s *Store) Exists(ctx context.Context, docID string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"_id": docID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Hero returns the resolved hero content. On store failure the full
// fallback record is returned alongside the error so callers can log
// and still render.
func (s *Store) Hero(ctx context.Context) (models.HeroContent, error) {
	raw, found, err := s.GetRaw(ctx, models.ContentDocHero)
	if err != nil || !found {
		return models.DefaultHeroContent(), err
	}
	return ResolveHero(raw), nil
}

// Home returns the resolved home page content.
func (s *Store) Home(ctx context.Context) (models.HomeContent, error) {
	raw, found, err := s.GetRaw(ctx, models.ContentDocHome)
	if err != nil || !found {
		return models.DefaultHomeContent(), err
	}
	return ResolveHome(raw), nil
}

// Contact returns the resolved contact info.
func (s *Store) Contact(ctx context.Context) (models.ContactInfo, error) {
	raw, found, err := s.GetRaw(ctx, models.ContentDocContact)
	if err != nil || !found {
		return models.DefaultContactInfo(), err
	}
	return ResolveContact(raw), nil
}

// About returns the resolved about page content.
func (s *Store) About(ctx context.Context) (models.AboutContent, error) {
	raw, found, err := s.GetRaw(ctx, models.ContentDocAbout)
	if err != nil || !found {
		return models.DefaultAboutContent(), err
	}
	return ResolveAbout(raw), nil
}

// Privacy returns the resolved privacy policy.
func (s *Store) Privacy(ctx context.Context) (models.PrivacyPolicy, error) {
	raw, found, err := s.GetRaw(ctx, models.ContentDocPrivacy)
	if err != nil || !found {
		return models.DefaultPrivacyPolicy(), err
	}
	return ResolvePrivacy(raw), nil
}
