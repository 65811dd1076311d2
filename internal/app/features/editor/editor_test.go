package editor

import (
	"net/url"
	"strings"
	"testing"

	"github.com/bimaah/advisoryhub/internal/domain/models"
)

func TestFieldValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  plain  ", "plain"},
		{"<b>bold</b> text", "bold text"},
		{"<script>alert(1)</script>hello", "hello"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := fieldValue(tt.in); got != tt.want {
			t.Errorf("fieldValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTooLong(t *testing.T) {
	long := strings.Repeat("a", MaxFieldLength+1)
	edge := strings.Repeat("a", MaxFieldLength)

	if tooLong("short", edge) {
		t.Error("values at the limit should pass")
	}
	if !tooLong("short", long) {
		t.Error("a value over the limit should be rejected")
	}
}

func TestParseHeroForm(t *testing.T) {
	values := url.Values{
		"heading":       {"  New heading  "},
		"subtext":       {"<em>Styled</em> subtext"},
		"cta_primary":   {"Book now"},
		"cta_secondary": {""},
	}
	rec := parseHeroForm(values)

	if rec.ID != models.ContentDocHero {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.Heading != "New heading" {
		t.Errorf("Heading = %q, want trimmed", rec.Heading)
	}
	if rec.Subtext != "Styled subtext" {
		t.Errorf("Subtext = %q, markup should be stripped", rec.Subtext)
	}
	if rec.CTAPrimary != "Book now" || rec.CTASecondary != "" {
		t.Errorf("CTAs = %q / %q", rec.CTAPrimary, rec.CTASecondary)
	}
}

func TestParseAboutForm_Values(t *testing.T) {
	values := url.Values{
		"title":             {"About Us"},
		"value_title":       {"Integrity", "", "  "},
		"value_description": {"We act honestly.", "", "<p></p>"},
	}
	rec := parseAboutForm(values)

	if rec.Title != "About Us" {
		t.Errorf("Title = %q", rec.Title)
	}
	// Rows left entirely blank are dropped.
	if len(rec.Values) != 1 {
		t.Fatalf("Values = %d rows, want 1", len(rec.Values))
	}
	if rec.Values[0].Title != "Integrity" || rec.Values[0].Description != "We act honestly." {
		t.Errorf("Values[0] = %+v", rec.Values[0])
	}
}

func TestParseAboutForm_UnevenRows(t *testing.T) {
	// A title with no matching description still forms a row.
	values := url.Values{
		"value_title": {"Compassion"},
	}
	rec := parseAboutForm(values)
	if len(rec.Values) != 1 || rec.Values[0].Title != "Compassion" || rec.Values[0].Description != "" {
		t.Errorf("Values = %+v", rec.Values)
	}
}

func TestParseServiceForm(t *testing.T) {
	values := url.Values{
		"title":       {"Immigration Advice"},
		"description": {"Help with applications."},
		"items":       {"Visas\r\n  Appeals  \n\n<b>Settlement</b>\n"},
		"order":       {"3"},
	}
	input := parseServiceForm(values)

	if input.Title != "Immigration Advice" {
		t.Errorf("Title = %q", input.Title)
	}
	want := []string{"Visas", "Appeals", "Settlement"}
	if len(input.Items) != len(want) {
		t.Fatalf("Items = %v, want %v", input.Items, want)
	}
	for i := range want {
		if input.Items[i] != want[i] {
			t.Errorf("Items[%d] = %q, want %q", i, input.Items[i], want[i])
		}
	}
	if input.Order != 3 {
		t.Errorf("Order = %d", input.Order)
	}
}

func TestParseServiceForm_EmptyItems(t *testing.T) {
	input := parseServiceForm(url.Values{"title": {"T"}})
	if input.Items == nil || len(input.Items) != 0 {
		t.Errorf("Items = %v, want empty non-nil slice", input.Items)
	}
	if input.Order != 0 {
		t.Errorf("Order = %d, want 0 when absent", input.Order)
	}
}

func TestValidateServiceInput(t *testing.T) {
	if msg := validateServiceInput(parseServiceForm(url.Values{"title": {"  "}})); msg != "Title is required." {
		t.Errorf("blank title message = %q", msg)
	}
	long := strings.Repeat("x", MaxFieldLength+1)
	if msg := validateServiceInput(parseServiceForm(url.Values{"title": {"T"}, "description": {long}})); msg != lengthError {
		t.Errorf("overlong description message = %q", msg)
	}
	if msg := validateServiceInput(parseServiceForm(url.Values{"title": {"T"}})); msg != "" {
		t.Errorf("valid input message = %q", msg)
	}
}

func TestParseFAQForm(t *testing.T) {
	input := parseFAQForm(url.Values{
		"question": {" What is the fee? "},
		"answer":   {"<a href='x'>See pricing</a>"},
		"order":    {"2"},
	})
	if input.Question != "What is the fee?" {
		t.Errorf("Question = %q", input.Question)
	}
	if input.Answer != "See pricing" {
		t.Errorf("Answer = %q", input.Answer)
	}
	if input.Order != 2 {
		t.Errorf("Order = %d", input.Order)
	}

	if msg := validateFAQInput(parseFAQForm(url.Values{})); msg != "Question is required." {
		t.Errorf("blank question message = %q", msg)
	}
}

func TestParseTestimonialForm(t *testing.T) {
	input := parseTestimonialForm(url.Values{
		"name":    {"Fatima K."},
		"role":    {"Client"},
		"content": {"Wonderful support."},
		"rating":  {"4"},
	})
	if input.Name != "Fatima K." || input.Rating != 4 {
		t.Errorf("input = %+v", input)
	}

	// An unparseable or absent rating falls back to the default.
	input = parseTestimonialForm(url.Values{"name": {"N"}})
	if input.Rating != models.DefaultRating {
		t.Errorf("Rating = %d, want default %d when absent", input.Rating, models.DefaultRating)
	}
	input = parseTestimonialForm(url.Values{"name": {"N"}, "rating": {"abc"}})
	if input.Rating != models.DefaultRating {
		t.Errorf("Rating = %d, want default %d for unparseable", input.Rating, models.DefaultRating)
	}

	if msg := validateTestimonialInput(parseTestimonialForm(url.Values{})); msg != "Name is required." {
		t.Errorf("blank name message = %q", msg)
	}
}
