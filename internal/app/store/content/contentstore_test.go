package contentstore

import (
	"testing"

	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/bimaah/advisoryhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestGetRaw_Missing(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	raw, found, err := store.GetRaw(ctx, models.ContentDocHero)
	if err != nil {
		t.Fatalf("GetRaw() error = %v", err)
	}
	if found {
		t.Error("found = true for a document that was never saved")
	}
	if raw != nil {
		t.Errorf("raw = %v, want nil", raw)
	}
}

func TestUpsert_CreateAndRead(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.ContentDocHero, bson.M{
		"heading": "Saved heading",
		"subtext": "Saved subtext",
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	hero, err := store.Hero(ctx)
	if err != nil {
		t.Fatalf("Hero() error = %v", err)
	}
	if hero.Heading != "Saved heading" {
		t.Errorf("Heading = %q", hero.Heading)
	}
	if hero.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set server-side on save")
	}
}

func TestUpsert_MergesFields(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, models.ContentDocContact, bson.M{
		"phone": "020 7946 0000",
		"email": "hello@example.com",
	}); err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	// A later save touching only one field leaves the others alone.
	if err := store.Upsert(ctx, models.ContentDocContact, bson.M{
		"phone": "020 7946 0001",
	}); err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	contact, err := store.Contact(ctx)
	if err != nil {
		t.Fatalf("Contact() error = %v", err)
	}
	if contact.Phone != "020 7946 0001" {
		t.Errorf("Phone = %q", contact.Phone)
	}
	if contact.Email != "hello@example.com" {
		t.Errorf("Email = %q, earlier fields should survive a partial save", contact.Email)
	}
}

func TestUpsert_IgnoresReservedKeys(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.ContentDocHome, bson.M{
		"_id":       "something-else",
		"updatedAt": "not a time",
		"heading":   "Home heading",
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	raw, found, err := store.GetRaw(ctx, models.ContentDocHome)
	if err != nil || !found {
		t.Fatalf("GetRaw() = %v, %v, %v", raw, found, err)
	}
	if raw["_id"] != models.ContentDocHome {
		t.Errorf("_id = %v, caller must not override it", raw["_id"])
	}
	if _, isString := raw["updatedAt"].(string); isString {
		t.Error("updatedAt must be server-set, not taken from the caller")
	}
}

func TestExists(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	exists, err := store.Exists(ctx, models.ContentDocAbout)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true before any save")
	}

	if err := store.Upsert(ctx, models.ContentDocAbout, bson.M{"title": "About Us"}); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	exists, err = store.Exists(ctx, models.ContentDocAbout)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after a save")
	}
}

func TestTypedGetters_DefaultsWhenUnsaved(t *testing.T) {
	store := New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hero, err := store.Hero(ctx)
	if err != nil {
		t.Fatalf("Hero() error = %v", err)
	}
	def := models.DefaultHeroContent()
	if hero.Heading != def.Heading {
		t.Errorf("Heading = %q, want default %q", hero.Heading, def.Heading)
	}

	privacy, err := store.Privacy(ctx)
	if err != nil {
		t.Fatalf("Privacy() error = %v", err)
	}
	if privacy.CompanyRegistration == "" {
		t.Error("default privacy policy should carry the registration number")
	}
}
