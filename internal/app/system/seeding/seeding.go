// internal/app/system/seeding/seeding.go
package seeding

import (
	"context"

	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	faqstore "github.com/bimaah/advisoryhub/internal/app/store/faqs"
	servicestore "github.com/bimaah/advisoryhub/internal/app/store/services"
	testimonialstore "github.com/bimaah/advisoryhub/internal/app/store/testimonials"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll seeds default content if not already present. Every step is
// idempotent: existing documents are never overwritten, so edits made in
// the dashboard survive restarts.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedContentDocs(ctx, db, logger); err != nil {
		return err
	}
	if err := seedServices(ctx, db, logger); err != nil {
		return err
	}
	if err := seedFAQs(ctx, db, logger); err != nil {
		return err
	}
	if err := seedTestimonials(ctx, db, logger); err != nil {
		return err
	}
	return nil
}

// seedContentDocs creates the singleton content documents if they don't
// exist. The stored fields mirror the compiled-in defaults so editors see
// real values rather than blank forms.
func seedContentDocs(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := contentstore.New(db)

	docs := map[string]bson.M{
		models.ContentDocHero:    contentstore.FieldsFromHero(models.DefaultHeroContent()),
		models.ContentDocHome:    contentstore.FieldsFromHome(models.DefaultHomeContent()),
		models.ContentDocContact: contentstore.FieldsFromContact(models.DefaultContactInfo()),
		models.ContentDocAbout:   contentstore.FieldsFromAbout(models.DefaultAboutContent()),
		models.ContentDocPrivacy: contentstore.FieldsFromPrivacy(models.DefaultPrivacyPolicy()),
	}

	for _, docID := range models.AllContentDocIDs() {
		exists, err := store.Exists(ctx, docID)
		if err != nil {
			logger.Error("failed to check content doc",
				zap.String("doc_id", docID),
				zap.Error(err))
			return err
		}
		if exists {
			continue
		}
		if err := store.Upsert(ctx, docID, docs[docID]); err != nil {
			logger.Error("failed to seed content doc",
				zap.String("doc_id", docID),
				zap.Error(err))
			return err
		}
		logger.Info("seeded content doc", zap.String("doc_id", docID))
	}

	return nil
}

// seedServices creates the starter service cards on an empty collection.
func seedServices(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := servicestore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []servicestore.Input{
		{
			Title:       "Immigration Advice",
			Description: "Regulated advice on visa applications, extensions, and settlement routes.",
			Items:       []string{"Visa applications", "Visit and family visas", "Settlement and citizenship"},
		},
		{
			Title:       "Benefits & Welfare Support",
			Description: "Help understanding entitlements and preparing benefit claims and appeals.",
			Items:       []string{"Entitlement checks", "Claim preparation", "Appeals support"},
		},
		{
			Title:       "Legal Documentation",
			Description: "Assistance preparing and reviewing legal documents and official correspondence.",
			Items:       []string{"Document preparation", "Form filling", "Official correspondence"},
		},
	}

	for _, in := range starters {
		if _, err := store.Add(ctx, in); err != nil {
			logger.Error("failed to seed service",
				zap.String("title", in.Title),
				zap.Error(err))
			return err
		}
	}
	logger.Info("seeded starter services", zap.Int("count", len(starters)))
	return nil
}

// seedFAQs creates the starter questions on an empty collection.
func seedFAQs(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := faqstore.New(db)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	starters := []faqstore.Input{
		{
			Question: "Are you regulated to give immigration advice?",
			Answer:   "Yes. We are authorised and regulated by the Immigration Advice Authority, registration number " + models.IAARegistrationNumber + ".",
		},
		{
			Question: "How do I book a consultation?",
			Answer:   "Use the consultation form on this site or call us during opening hours. We will confirm your appointment by email.",
		},
		{
			Question: "What should I bring to my first appointment?",
			Answer:   "Bring any letters, application references, or identity documents relevant to your matter. Copies are fine.",
		},
	}

	for _, in := range starters {
		if _, err := store.Add(ctx, in); err != nil {
			logger.Error("failed to seed faq",
				zap.String("question", in.Question),
				zap.Error(err))
			return err
		}
	}
	logger.Info("seeded starter faqs", zap.Int("count", len(starters)))
	return nil
}

// seedTestimonials leaves the collection empty; testimonials are added in
// the dashboard as real client feedback arrives. Kept as a named step so
// the seed order is explicit.
func seedTestimonials(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	store := testimonialstore.New(db)
	_, err := store.Count(ctx)
	return err
}
