// internal/domain/models/consultation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Consultation records one accepted consultation-form submission.
// Reference is a UUID quoted in the notification emails so the office
// can match replies to the stored record.
type Consultation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reference   string             `bson:"reference" json:"reference"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Service     string             `bson:"service" json:"service"`
	ServiceName string             `bson:"service_name" json:"service_name"`
	Message     string             `bson:"message" json:"message"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
}
