// internal/app/features/editor/faqs.go
package editor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	faqstore "github.com/bimaah/advisoryhub/internal/app/store/faqs"
	"github.com/bimaah/advisoryhub/internal/app/system/formutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// FAQRoutes returns a chi.Router with the FAQ editor mounted.
func FAQRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listFAQs)
	r.Get("/new", h.newFAQ)
	r.Post("/", h.createFAQ)
	r.Get("/{id}/edit", h.editFAQ)
	r.Post("/{id}", h.updateFAQ)
	r.Post("/{id}/delete", h.deleteFAQ)
	return r
}

type faqListVM struct {
	formutil.Base
	FAQs    []models.FAQ
	Success bool
}

func (h *Handler) listFAQs(w http.ResponseWriter, r *http.Request) {
	vm := faqListVM{
		Base:    formutil.NewBase(r, "FAQs", "/admin"),
		Success: saved(r),
	}

	faqs, err := h.faqStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list faqs", err)
		vm.SetError("Failed to load FAQs.")
	}
	vm.FAQs = faqs

	templates.Render(w, r, "editor/faq_list", vm)
}

type faqFormVM struct {
	formutil.Base
	FAQ     models.FAQ
	IsNew   bool
	Success bool
}

func (h *Handler) faqVM(r *http.Request, faq models.FAQ, isNew bool) faqFormVM {
	title := "Edit FAQ"
	if isNew {
		title = "New FAQ"
	}
	return faqFormVM{
		Base:    formutil.NewBase(r, title, "/admin/faqs"),
		FAQ:     faq,
		IsNew:   isNew,
		Success: saved(r),
	}
}

func parseFAQForm(values url.Values) faqstore.Input {
	input := faqstore.Input{
		Question: field(values, "question"),
		Answer:   field(values, "answer"),
	}
	if order, err := strconv.Atoi(values.Get("order")); err == nil {
		input.Order = order
	}
	return input
}

func faqFromInput(id string, input faqstore.Input) models.FAQ {
	return models.FAQ{
		ID:       id,
		Question: input.Question,
		Answer:   input.Answer,
		Order:    input.Order,
	}
}

func (h *Handler) newFAQ(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "editor/faq_edit", h.faqVM(r, models.FAQ{}, true))
}

func (h *Handler) createFAQ(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseFAQForm(r.Form)

	if msg := validateFAQInput(input); msg != "" {
		vm := h.faqVM(r, faqFromInput("", input), true)
		vm.SetError(msg)
		templates.Render(w, r, "editor/faq_edit", vm)
		return
	}

	if _, err := h.faqStore.Add(r.Context(), input); err != nil {
		h.errLog.Log(r, "failed to create faq", err)
		vm := h.faqVM(r, faqFromInput("", input), true)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/faq_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/faqs")
}

func (h *Handler) editFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	faq, err := h.faqStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to load faq", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	templates.Render(w, r, "editor/faq_edit", h.faqVM(r, faq, false))
}

func (h *Handler) updateFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseFAQForm(r.Form)

	if msg := validateFAQInput(input); msg != "" {
		vm := h.faqVM(r, faqFromInput(id, input), false)
		vm.SetError(msg)
		templates.Render(w, r, "editor/faq_edit", vm)
		return
	}

	if err := h.faqStore.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to update faq", err)
		vm := h.faqVM(r, faqFromInput(id, input), false)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/faq_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/faqs")
}

func (h *Handler) deleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.faqStore.Delete(r.Context(), id); err != nil {
		h.errLog.Log(r, "failed to delete faq", err)
	}
	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

func validateFAQInput(input faqstore.Input) string {
	if input.Question == "" {
		return "Question is required."
	}
	if tooLong(input.Question, input.Answer) {
		return lengthError
	}
	return ""
}
