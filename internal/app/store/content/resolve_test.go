package contentstore

import (
	"testing"
	"time"

	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestResolveHero_EmptyDocument(t *testing.T) {
	got := ResolveHero(bson.M{})
	def := models.DefaultHeroContent()

	if got.Heading != def.Heading {
		t.Errorf("Heading = %q, want default %q", got.Heading, def.Heading)
	}
	if got.CTAPrimary != def.CTAPrimary {
		t.Errorf("CTAPrimary = %q, want default %q", got.CTAPrimary, def.CTAPrimary)
	}
	if got.ID != models.ContentDocHero {
		t.Errorf("ID = %q", got.ID)
	}
	if !got.UpdatedAt.Equal(storeutil.Epoch) {
		t.Errorf("UpdatedAt = %v, want Epoch for an empty document", got.UpdatedAt)
	}
}

func TestResolveHero_FieldwiseMerge(t *testing.T) {
	saved := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := ResolveHero(bson.M{
		"heading":   "Custom heading",
		"subtext":   123, // wrong type, field falls back individually
		"updatedAt": primitive.NewDateTimeFromTime(saved),
	})
	def := models.DefaultHeroContent()

	if got.Heading != "Custom heading" {
		t.Errorf("Heading = %q, stored value should win", got.Heading)
	}
	if got.Subtext != def.Subtext {
		t.Errorf("Subtext = %q, want default for mistyped field", got.Subtext)
	}
	if got.CTASecondary != def.CTASecondary {
		t.Errorf("CTASecondary = %q, want default for missing field", got.CTASecondary)
	}
	if !got.UpdatedAt.Equal(saved) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, saved)
	}
}

func TestResolveHero_EmptyStringWins(t *testing.T) {
	// An admin clearing a field stores "", and that sticks: the default
	// only covers fields never written, not fields set to empty.
	got := ResolveHero(bson.M{"subtext": ""})
	if got.Subtext != "" {
		t.Errorf("Subtext = %q, want empty string", got.Subtext)
	}
}

func TestResolveAbout_Values(t *testing.T) {
	def := models.DefaultAboutContent()

	// No stored values: the default list stands in.
	got := ResolveAbout(bson.M{})
	if len(got.Values) != len(def.Values) {
		t.Fatalf("Values = %d entries, want default %d", len(got.Values), len(def.Values))
	}

	// A stored array replaces the default wholesale, even when shorter.
	got = ResolveAbout(bson.M{
		"values": primitive.A{
			bson.M{"title": "Integrity", "description": "We act honestly."},
			"not a document", // skipped
		},
	})
	if len(got.Values) != 1 {
		t.Fatalf("Values = %d entries, want 1", len(got.Values))
	}
	if got.Values[0].Title != "Integrity" || got.Values[0].Description != "We act honestly." {
		t.Errorf("Values[0] = %+v", got.Values[0])
	}

	// An empty stored array also wins: the admin removed every value.
	got = ResolveAbout(bson.M{"values": primitive.A{}})
	if len(got.Values) != 0 {
		t.Errorf("Values = %d entries, want 0 for stored empty array", len(got.Values))
	}
}

func TestResolvePrivacy_PartialDocument(t *testing.T) {
	def := models.DefaultPrivacyPolicy()
	got := ResolvePrivacy(bson.M{
		"lastUpdated":  "1 June 2025",
		"contactEmail": "privacy@example.com",
	})

	if got.LastUpdated != "1 June 2025" {
		t.Errorf("LastUpdated = %q", got.LastUpdated)
	}
	if got.ContactEmail != "privacy@example.com" {
		t.Errorf("ContactEmail = %q", got.ContactEmail)
	}
	if got.WhoWeAre != def.WhoWeAre {
		t.Errorf("WhoWeAre = %q, want default", got.WhoWeAre)
	}
	if got.IAAPortalURL != def.IAAPortalURL {
		t.Errorf("IAAPortalURL = %q, want default", got.IAAPortalURL)
	}
}

func TestFieldsFromHeroRoundTrip(t *testing.T) {
	rec := models.HeroContent{
		Heading:      "H",
		Subtext:      "S",
		CTAPrimary:   "P",
		CTASecondary: "Q",
	}
	got := ResolveHero(FieldsFromHero(rec))
	if got.Heading != "H" || got.Subtext != "S" || got.CTAPrimary != "P" || got.CTASecondary != "Q" {
		t.Errorf("round trip = %+v", got)
	}
}
