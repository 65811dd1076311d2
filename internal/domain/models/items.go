// internal/domain/models/items.go
package models

// Collection items are independently identified and carry an explicit
// Order field controlling display sequence. Order has no uniqueness
// constraint; listing sorts ascending with ties kept in retrieval order.

// Service is one entry in the services collection.
type Service struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Items       []string `bson:"items" json:"items"`
	Order       int      `bson:"order" json:"order"`
}

// FAQ is one entry in the faqs collection.
type FAQ struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
	Order    int    `bson:"order" json:"order"`
}

// Testimonial is one entry in the testimonials collection.
// Rating is stored as given; the resolver does not clamp it to 1-5.
type Testimonial struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
	Content string `bson:"content" json:"content"`
	Rating  int    `bson:"rating" json:"rating"`
	Order   int    `bson:"order" json:"order"`
}

// Per-field defaults applied to malformed or missing item fields.
const (
	DefaultServiceTitle    = "Untitled Service"
	DefaultFAQQuestion     = "Untitled question"
	DefaultTestimonialName = "Anonymous"
	DefaultRating          = 5
	DefaultItemOrder       = 0
)
