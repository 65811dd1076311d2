// internal/app/features/editor/testimonials.go
package editor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	testimonialstore "github.com/bimaah/advisoryhub/internal/app/store/testimonials"
	"github.com/bimaah/advisoryhub/internal/app/system/formutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestimonialRoutes returns a chi.Router with the testimonial editor mounted.
func TestimonialRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listTestimonials)
	r.Get("/new", h.newTestimonial)
	r.Post("/", h.createTestimonial)
	r.Get("/{id}/edit", h.editTestimonial)
	r.Post("/{id}", h.updateTestimonial)
	r.Post("/{id}/delete", h.deleteTestimonial)
	return r
}

type testimonialListVM struct {
	formutil.Base
	Testimonials []models.Testimonial
	Success      bool
}

func (h *Handler) listTestimonials(w http.ResponseWriter, r *http.Request) {
	vm := testimonialListVM{
		Base:    formutil.NewBase(r, "Testimonials", "/admin"),
		Success: saved(r),
	}

	testimonials, err := h.testimonialStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list testimonials", err)
		vm.SetError("Failed to load testimonials.")
	}
	vm.Testimonials = testimonials

	templates.Render(w, r, "editor/testimonial_list", vm)
}

type testimonialFormVM struct {
	formutil.Base
	Testimonial models.Testimonial
	IsNew       bool
	Success     bool
}

func (h *Handler) testimonialVM(r *http.Request, t models.Testimonial, isNew bool) testimonialFormVM {
	title := "Edit Testimonial"
	if isNew {
		title = "New Testimonial"
	}
	return testimonialFormVM{
		Base:        formutil.NewBase(r, title, "/admin/testimonials"),
		Testimonial: t,
		IsNew:       isNew,
		Success:     saved(r),
	}
}

func parseTestimonialForm(values url.Values) testimonialstore.Input {
	input := testimonialstore.Input{
		Name:    field(values, "name"),
		Role:    field(values, "role"),
		Content: field(values, "content"),
		Rating:  models.DefaultRating,
	}
	if rating, err := strconv.Atoi(values.Get("rating")); err == nil {
		input.Rating = rating
	}
	if order, err := strconv.Atoi(values.Get("order")); err == nil {
		input.Order = order
	}
	return input
}

func testimonialFromInput(id string, input testimonialstore.Input) models.Testimonial {
	return models.Testimonial{
		ID:      id,
		Name:    input.Name,
		Role:    input.Role,
		Content: input.Content,
		Rating:  input.Rating,
		Order:   input.Order,
	}
}

func (h *Handler) newTestimonial(w http.ResponseWriter, r *http.Request) {
	t := models.Testimonial{Rating: models.DefaultRating}
	templates.Render(w, r, "editor/testimonial_edit", h.testimonialVM(r, t, true))
}

func (h *Handler) createTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseTestimonialForm(r.Form)

	if msg := validateTestimonialInput(input); msg != "" {
		vm := h.testimonialVM(r, testimonialFromInput("", input), true)
		vm.SetError(msg)
		templates.Render(w, r, "editor/testimonial_edit", vm)
		return
	}

	if _, err := h.testimonialStore.Add(r.Context(), input); err != nil {
		h.errLog.Log(r, "failed to create testimonial", err)
		vm := h.testimonialVM(r, testimonialFromInput("", input), true)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/testimonial_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/testimonials")
}

func (h *Handler) editTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, err := h.testimonialStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to load testimonial", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	templates.Render(w, r, "editor/testimonial_edit", h.testimonialVM(r, t, false))
}

func (h *Handler) updateTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseTestimonialForm(r.Form)

	if msg := validateTestimonialInput(input); msg != "" {
		vm := h.testimonialVM(r, testimonialFromInput(id, input), false)
		vm.SetError(msg)
		templates.Render(w, r, "editor/testimonial_edit", vm)
		return
	}

	if err := h.testimonialStore.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to update testimonial", err)
		vm := h.testimonialVM(r, testimonialFromInput(id, input), false)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/testimonial_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/testimonials")
}

func (h *Handler) deleteTestimonial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.testimonialStore.Delete(r.Context(), id); err != nil {
		h.errLog.Log(r, "failed to delete testimonial", err)
	}
	http.Redirect(w, r, "/admin/testimonials", http.StatusSeeOther)
}

func validateTestimonialInput(input testimonialstore.Input) string {
	if input.Name == "" {
		return "Name is required."
	}
	if tooLong(input.Name, input.Role, input.Content) {
		return lengthError
	}
	return ""
}
