// internal/app/features/pages/pages.go
package pages

import (
	"net/http"

	errorsfeature "github.com/bimaah/advisoryhub/internal/app/features/errors"
	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	faqstore "github.com/bimaah/advisoryhub/internal/app/store/faqs"
	"github.com/bimaah/advisoryhub/internal/app/system/viewdata"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public content pages: about, contact, faq, and
// privacy. Each renders managed content with the compiled-in defaults as
// fallback, so the pages work on an empty database.
type Handler struct {
	contentStore *contentstore.Store
	faqStore     *faqstore.Store
	errLog       *errorsfeature.ErrorLogger
	logger       *zap.Logger
}

// NewHandler creates a new pages Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore: contentstore.New(db),
		faqStore:     faqstore.New(db),
		errLog:       errLog,
		logger:       logger,
	}
}

// AboutRouter returns a router for the about page.
func (h *Handler) AboutRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showAbout)
	return r
}

// ContactRouter returns a router for the contact page.
func (h *Handler) ContactRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showContact)
	return r
}

// FAQRouter returns a router for the FAQ page.
func (h *Handler) FAQRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showFAQ)
	return r
}

// PrivacyRouter returns a router for the privacy policy page.
func (h *Handler) PrivacyRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showPrivacy)
	return r
}

// AboutVM is the view model for the about page.
type AboutVM struct {
	viewdata.BaseVM
	About models.AboutContent
}

func (h *Handler) showAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.contentStore.About(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load about content", err)
	}

	vm := AboutVM{
		BaseVM: viewdata.New(r),
		About:  about,
	}
	vm.Title = about.Title

	templates.Render(w, r, "pages/about", vm)
}

// ContactVM is the view model for the contact page.
type ContactVM struct {
	viewdata.BaseVM
	Contact models.ContactInfo
}

func (h *Handler) showContact(w http.ResponseWriter, r *http.Request) {
	contact, err := h.contentStore.Contact(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact info", err)
	}

	vm := ContactVM{
		BaseVM:  viewdata.New(r),
		Contact: contact,
	}
	vm.Title = "Contact"

	templates.Render(w, r, "pages/contact", vm)
}

// FAQVM is the view model for the FAQ page.
type FAQVM struct {
	viewdata.BaseVM
	FAQs    []models.FAQ
	Contact models.ContactInfo
}

func (h *Handler) showFAQ(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list faqs", err)
	}

	contact, err := h.contentStore.Contact(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact info", err)
	}

	vm := FAQVM{
		BaseVM:  viewdata.New(r),
		FAQs:    faqs,
		Contact: contact,
	}
	vm.Title = "Frequently Asked Questions"

	templates.Render(w, r, "pages/faq", vm)
}

// PrivacyVM is the view model for the privacy policy page.
type PrivacyVM struct {
	viewdata.BaseVM
	Privacy models.PrivacyPolicy
}

func (h *Handler) showPrivacy(w http.ResponseWriter, r *http.Request) {
	privacy, err := h.contentStore.Privacy(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load privacy policy", err)
	}

	vm := PrivacyVM{
		BaseVM:  viewdata.New(r),
		Privacy: privacy,
	}
	vm.Title = "Privacy Policy"

	templates.Render(w, r, "pages/privacy", vm)
}
