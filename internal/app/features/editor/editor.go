// internal/app/features/editor/editor.go
package editor

import (
	"net/url"
	"strings"

	errorsfeature "github.com/bimaah/advisoryhub/internal/app/features/errors"
	consultationstore "github.com/bimaah/advisoryhub/internal/app/store/consultations"
	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	faqstore "github.com/bimaah/advisoryhub/internal/app/store/faqs"
	servicestore "github.com/bimaah/advisoryhub/internal/app/store/services"
	testimonialstore "github.com/bimaah/advisoryhub/internal/app/store/testimonials"
	"github.com/bimaah/advisoryhub/internal/app/system/htmlsanitize"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MaxFieldLength is the maximum allowed length for a single content
// field (20KB). Long-form policy sections stay well under this.
const MaxFieldLength = 20000

// Handler provides the admin content editors: the singleton page
// documents plus the services, FAQ, and testimonial collections. All
// routes are mounted behind the admin role requirement in bootstrap.
type Handler struct {
	contentStore      *contentstore.Store
	serviceStore      *servicestore.Store
	faqStore          *faqstore.Store
	testimonialStore  *testimonialstore.Store
	consultationStore *consultationstore.Store
	errLog            *errorsfeature.ErrorLogger
	logger            *zap.Logger
}

// NewHandler creates a new editor Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore:      contentstore.New(db),
		serviceStore:      servicestore.New(db),
		faqStore:          faqstore.New(db),
		testimonialStore:  testimonialstore.New(db),
		consultationStore: consultationstore.New(db),
		errLog:            errLog,
		logger:            logger,
	}
}

// field reads a submitted form value, trims it, and strips any HTML.
// Managed content is stored and rendered as plain text.
func field(values url.Values, name string) string {
	return fieldValue(values.Get(name))
}

// fieldValue trims and strips a single raw form value.
func fieldValue(v string) string {
	return htmlsanitize.StripTags(strings.TrimSpace(v))
}

// tooLong reports whether any of the given values exceeds MaxFieldLength.
func tooLong(values ...string) bool {
	for _, v := range values {
		if len(v) > MaxFieldLength {
			return true
		}
	}
	return false
}

// lengthError is the validation message for oversized fields.
const lengthError = "One of the fields is too long. Maximum length is 20,000 characters."
