package testimonialstore

import (
	"errors"
	"testing"

	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/bimaah/advisoryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestResolve_Defaults(t *testing.T) {
	got := Resolve(bson.M{})
	if got.Name != models.DefaultTestimonialName {
		t.Errorf("Name = %q, want %q", got.Name, models.DefaultTestimonialName)
	}
	if got.Rating != models.DefaultRating {
		t.Errorf("Rating = %d, want %d", got.Rating, models.DefaultRating)
	}
	if got.Role != "" || got.Content != "" {
		t.Errorf("Role/Content = %q/%q, want empty", got.Role, got.Content)
	}
}

func TestResolve_RatingNotClamped(t *testing.T) {
	// Stored values pass through as-is; range enforcement happens at the
	// form layer, not on read.
	got := Resolve(bson.M{"rating": int32(9)})
	if got.Rating != 9 {
		t.Errorf("Rating = %d, want 9", got.Rating)
	}
}

func TestAddAndList(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Add(ctx, Input{
		Name:    "Fatima K.",
		Role:    "Asylum client",
		Content: "They guided me through every step.",
		Rating:  5,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Fatima K." || got.Rating != 5 || got.Order != 0 {
		t.Errorf("Get() = %+v", got)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() = %d items, want 1", len(list))
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Update(ctx, "missing", Input{Name: "X"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update(missing) error = %v, want ErrNoDocuments", err)
	}
}

func TestDelete(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Add(ctx, Input{Name: "Temp", Rating: 4})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Get(deleted) error = %v, want ErrNoDocuments", err)
	}
}
