// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"
	"time"

	consultationstore "github.com/bimaah/advisoryhub/internal/app/store/consultations"
	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	faqstore "github.com/bimaah/advisoryhub/internal/app/store/faqs"
	servicestore "github.com/bimaah/advisoryhub/internal/app/store/services"
	testimonialstore "github.com/bimaah/advisoryhub/internal/app/store/testimonials"
	"github.com/bimaah/advisoryhub/internal/app/store/storeutil"
	"github.com/bimaah/advisoryhub/internal/app/system/viewdata"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the admin dashboard overview.
type Handler struct {
	contentStore      *contentstore.Store
	serviceStore      *servicestore.Store
	faqStore          *faqstore.Store
	testimonialStore  *testimonialstore.Store
	consultationStore *consultationstore.Store
	logger            *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore:      contentstore.New(db),
		serviceStore:      servicestore.New(db),
		faqStore:          faqstore.New(db),
		testimonialStore:  testimonialstore.New(db),
		consultationStore: consultationstore.New(db),
		logger:            logger,
	}
}

// ContentStatus summarizes one singleton content document for the
// overview table.
type ContentStatus struct {
	DocID     string
	Label     string
	Saved     bool      // a document exists in the content collection
	UpdatedAt time.Time // zero when never saved
}

// DashboardVM is the view model for the dashboard overview.
type DashboardVM struct {
	viewdata.BaseVM
	ContentDocs         []ContentStatus
	ServiceCount        int64
	FAQCount            int64
	TestimonialCount    int64
	ConsultationCount   int64
	RecentConsultations []models.Consultation
}

// Routes returns a chi.Router with dashboard routes mounted. The caller
// wraps this in the admin role requirement.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showDashboard)
	return r
}

// contentLabels maps singleton doc ids to the names shown in the
// overview table.
var contentLabels = map[string]string{
	models.ContentDocHero:    "Hero Banner",
	models.ContentDocHome:    "Home Page",
	models.ContentDocContact: "Contact Details",
	models.ContentDocAbout:   "About Page",
	models.ContentDocPrivacy: "Privacy Policy",
}

// showDashboard displays the content overview. Individual load failures
// are logged and leave their section empty rather than failing the page.
func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := DashboardVM{
		BaseVM: viewdata.New(r),
	}
	vm.Title = "Dashboard"

	for _, docID := range models.AllContentDocIDs() {
		status := ContentStatus{
			DocID: docID,
			Label: contentLabels[docID],
		}
		raw, found, err := h.contentStore.GetRaw(ctx, docID)
		if err != nil {
			h.logger.Warn("failed to load content doc status",
				zap.String("doc_id", docID),
				zap.Error(err))
		}
		if found {
			status.Saved = true
			if t := storeutil.Time(raw, "updatedAt"); !t.Equal(storeutil.Epoch) {
				status.UpdatedAt = t
			}
		}
		vm.ContentDocs = append(vm.ContentDocs, status)
	}

	var err error
	if vm.ServiceCount, err = h.serviceStore.Count(ctx); err != nil {
		h.logger.Warn("failed to count services", zap.Error(err))
	}
	if vm.FAQCount, err = h.faqStore.Count(ctx); err != nil {
		h.logger.Warn("failed to count faqs", zap.Error(err))
	}
	if vm.TestimonialCount, err = h.testimonialStore.Count(ctx); err != nil {
		h.logger.Warn("failed to count testimonials", zap.Error(err))
	}
	if vm.ConsultationCount, err = h.consultationStore.Count(ctx); err != nil {
		h.logger.Warn("failed to count consultations", zap.Error(err))
	}

	if vm.RecentConsultations, err = h.consultationStore.Recent(ctx, 5); err != nil {
		h.logger.Warn("failed to list recent consultations", zap.Error(err))
	}

	templates.Render(w, r, "dashboard/index", vm)
}
