// internal/app/features/home/home.go
package home

import (
	"net/http"

	errorsfeature "github.com/bimaah/advisoryhub/internal/app/features/errors"
	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	servicestore "github.com/bimaah/advisoryhub/internal/app/store/services"
	testimonialstore "github.com/bimaah/advisoryhub/internal/app/store/testimonials"
	"github.com/bimaah/advisoryhub/internal/app/system/viewdata"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the landing page handler.
type Handler struct {
	contentStore     *contentstore.Store
	serviceStore     *servicestore.Store
	testimonialStore *testimonialstore.Store
	errLog           *errorsfeature.ErrorLogger
	logger           *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		contentStore:     contentstore.New(db),
		serviceStore:     servicestore.New(db),
		testimonialStore: testimonialstore.New(db),
		errLog:           errLog,
		logger:           logger,
	}
}

// HomeVM is the view model for the landing page.
type HomeVM struct {
	viewdata.BaseVM
	Hero         models.HeroContent
	Home         models.HomeContent
	Contact      models.ContactInfo
	Services     []models.Service
	Testimonials []models.Testimonial
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the landing page. Content failures degrade to the
// compiled-in defaults so the page always renders.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := HomeVM{
		BaseVM: viewdata.New(r),
	}
	vm.Title = "Home"

	hero, err := h.contentStore.Hero(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load hero content", err)
	}
	vm.Hero = hero

	home, err := h.contentStore.Home(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home content", err)
	}
	vm.Home = home

	contact, err := h.contentStore.Contact(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load contact info", err)
	}
	vm.Contact = contact

	services, err := h.serviceStore.List(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to list services", err)
	}
	vm.Services = services

	testimonials, err := h.testimonialStore.List(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to list testimonials", err)
	}
	vm.Testimonials = testimonials

	templates.Render(w, r, "home/index", vm)
}
