package faqstore

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
	if got.Question != models.DefaultFAQQuestion {
		t.Errorf("Question = %q, want %q", got.Question, models.DefaultFAQQuestion)
	}
	if got.Answer != "" {
		t.Errorf("Answer = %q, want empty", got.Answer)
	}
	if got.Order != models.DefaultItemOrder {
		t.Errorf("Order = %d", got.Order)
	}
}

func TestAddListRoundTrip(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, q := range []string{"How long does a visa take?", "Do you offer legal aid?"} {
		if _, err := store.Add(ctx, Input{Question: q, Answer: "It depends."}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List() = %d items, want 2", len(list))
	}
	if list[0].Question != "How long does a visa take?" {
		t.Errorf("first question = %q, insertion order should hold on equal-step orders", list[0].Question)
	}
	if list[0].Order != 0 || list[1].Order != 1 {
		t.Errorf("orders = %d, %d", list[0].Order, list[1].Order)
	}
}

func TestUpdateAndReorder(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Add(ctx, Input{Question: "First", Answer: "a"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := store.Add(ctx, Input{Question: "Second", Answer: "b"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := store.Update(ctx, first, Input{Question: "First (revised)", Answer: "a2", Order: 5}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list[0].Question != "Second" || list[1].Question != "First (revised)" {
		t.Errorf("order after update = %q, %q", list[0].Question, list[1].Question)
	}
	if list[1].Answer != "a2" {
		t.Errorf("Answer = %q", list[1].Answer)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Update(ctx, "missing", Input{Question: "Q"})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("Update(missing) error = %v, want ErrNoDocuments", err)
	}
}

func TestDelete(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id, err := store.Add(ctx, Input{Question: "Q", Answer: "A"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count() = %d, want 0", count)
	}
}
