package servicestore

import (
	"errors"
	"testing"

	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/bimaah/advisoryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestResolve(t *testing.T) {
	got := Resolve(bson.M{
		"_id":         "abc123",
		"title":       "Immigration Advice",
		"description": "Visa applications and appeals.",
		"items":       []any{"Visas", "Appeals"},
		"order":       int32(2),
	})
	if got.ID != "abc123" {
		t.Errorf("ID = %q", got.ID)
	}
	if got.Title != "Immigration Advice" {
		t.Errorf("Title = %q", got.Title)
	}
	if len(got.Items) != 2 || got.Items[0] != "Visas" {
		t.Errorf("Items = %v", got.Items)
	}
	if got.Order != 2 {
		t.Errorf("Order = %d", got.Order)
	}
}

func TestResolve_Defaults(t *testing.T) {
	got := Resolve(bson.M{})
	if got.Title != models.DefaultServiceTitle {
		t.Errorf("Title = %q, want %q", got.Title, models.DefaultServiceTitle)
	}
	if got.Description != "" {
		t.Errorf("Description = %q, want empty", got.Description)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", got.Items)
	}
	if got.Order != models.DefaultItemOrder {
		t.Errorf("Order = %d, want %d", got.Order, models.DefaultItemOrder)
	}
}

func TestAddAssignsSequentialOrder(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Add(ctx, Input{Title: "First"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	second, err := store.Add(ctx, Input{Title: "Second", Order: 99})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	a, err := store.Get(ctx, first)
	if err != nil {
		t.Fatalf("Get(first) error = %v", err)
	}
	b, err := store.Get(ctx, second)
	if err != nil {
		t.Fatalf("Get(second) error = %v", err)
	}
	if a.Order != 0 || b.Order != 1 {
		t.Errorf("orders = %d, %d; new items go to the end regardless of input", a.Order, b.Order)
	}
}

func TestListSortsByOrder(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	ids := make([]string, 3)
	for i, title := range []string{"A", "B", "C"} {
		id, err := store.Add(ctx, Input{Title: title})
		if err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		ids[i] = id
	}

	// Move A to the end.
	if err := store.Update(ctx, ids[0], Input{Title: "A", Order: 10}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List() = %d items", len(list))
	}
	if list[0].Title != "B" || list[1].Title != "C" || list[2].Title != "A" {
		t.Errorf("order = %s, %s, %s", list[0].Title, list[1].Title, list[2].Title)
	}
}

func TestList_Empty(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() = %d items, want 0", len(list))
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Update(ctx, "missing", Input{Title: "X"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update(missing) error = %v, want ErrNoDocuments", err)
	}
}

func TestDelete(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Add(ctx, Input{Title: "Doomed"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, id); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Get(deleted) error = %v, want ErrNoDocuments", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
}
