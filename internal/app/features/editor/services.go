// internal/app/features/editor/services.go
package editor

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	servicestore "github.com/bimaah/advisoryhub/internal/app/store/services"
	"github.com/bimaah/advisoryhub/internal/app/system/formutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRoutes returns a chi.Router with the service editor mounted.
func ServiceRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listServices)
	r.Get("/new", h.newService)
	r.Post("/", h.createService)
	r.Get("/{id}/edit", h.editService)
	r.Post("/{id}", h.updateService)
	r.Post("/{id}/delete", h.deleteService)
	return r
}

type serviceListVM struct {
	formutil.Base
	Services []models.Service
	Success  bool
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	vm := serviceListVM{
		Base:    formutil.NewBase(r, "Services", "/admin"),
		Success: saved(r),
	}

	services, err := h.serviceStore.List(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to list services", err)
		vm.SetError("Failed to load services.")
	}
	vm.Services = services

	templates.Render(w, r, "editor/service_list", vm)
}

type serviceFormVM struct {
	formutil.Base
	Service models.Service
	IsNew   bool
	Success bool
}

func (h *Handler) serviceVM(r *http.Request, svc models.Service, isNew bool) serviceFormVM {
	title := "Edit Service"
	if isNew {
		title = "New Service"
	}
	return serviceFormVM{
		Base:    formutil.NewBase(r, title, "/admin/services"),
		Service: svc,
		IsNew:   isNew,
		Success: saved(r),
	}
}

// parseServiceForm builds a store input from the submitted form. The
// bullet items arrive one per line in a single textarea.
func parseServiceForm(values url.Values) servicestore.Input {
	input := servicestore.Input{
		Title:       field(values, "title"),
		Description: field(values, "description"),
		Items:       []string{},
	}
	for _, line := range strings.Split(values.Get("items"), "\n") {
		if item := fieldValue(line); item != "" {
			input.Items = append(input.Items, item)
		}
	}
	if order, err := strconv.Atoi(values.Get("order")); err == nil {
		input.Order = order
	}
	return input
}

func serviceFromInput(id string, input servicestore.Input) models.Service {
	return models.Service{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Items:       input.Items,
		Order:       input.Order,
	}
}

func (h *Handler) newService(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "editor/service_edit", h.serviceVM(r, models.Service{}, true))
}

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseServiceForm(r.Form)

	if msg := validateServiceInput(input); msg != "" {
		vm := h.serviceVM(r, serviceFromInput("", input), true)
		vm.SetError(msg)
		templates.Render(w, r, "editor/service_edit", vm)
		return
	}

	if _, err := h.serviceStore.Add(r.Context(), input); err != nil {
		h.errLog.Log(r, "failed to create service", err)
		vm := h.serviceVM(r, serviceFromInput("", input), true)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/service_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/services")
}

func (h *Handler) editService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	svc, err := h.serviceStore.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to load service", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	templates.Render(w, r, "editor/service_edit", h.serviceVM(r, svc, false))
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	input := parseServiceForm(r.Form)

	if msg := validateServiceInput(input); msg != "" {
		vm := h.serviceVM(r, serviceFromInput(id, input), false)
		vm.SetError(msg)
		templates.Render(w, r, "editor/service_edit", vm)
		return
	}

	if err := h.serviceStore.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			http.NotFound(w, r)
			return
		}
		h.errLog.Log(r, "failed to update service", err)
		vm := h.serviceVM(r, serviceFromInput(id, input), false)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/service_edit", vm)
		return
	}
	redirectSaved(w, r, "/admin/services")
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.serviceStore.Delete(r.Context(), id); err != nil {
		h.errLog.Log(r, "failed to delete service", err)
	}
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

func validateServiceInput(input servicestore.Input) string {
	if input.Title == "" {
		return "Title is required."
	}
	all := append([]string{input.Title, input.Description}, input.Items...)
	if tooLong(all...) {
		return lengthError
	}
	return ""
}
