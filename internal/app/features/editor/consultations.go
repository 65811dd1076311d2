// internal/app/features/editor/consultations.go
package editor

import (
	"net/http"

	"github.com/bimaah/advisoryhub/internal/app/system/formutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// consultationListLimit caps the admin listing. Submissions older than
// the retention window are removed by the retention job anyway.
const consultationListLimit = 50

// ConsultationRoutes returns a chi.Router with the consultation
// listing mounted. Submissions are read-only in the dashboard.
func ConsultationRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listConsultations)
	return r
}

type consultationListVM struct {
	formutil.Base
	Consultations []models.Consultation
	Total         int64
}

func (h *Handler) listConsultations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := consultationListVM{
		Base: formutil.NewBase(r, "Consultation Requests", "/admin"),
	}

	consultations, err := h.consultationStore.Recent(ctx, consultationListLimit)
	if err != nil {
		h.errLog.Log(r, "failed to list consultations", err)
		vm.SetError("Failed to load consultation requests.")
	}
	vm.Consultations = consultations

	if vm.Total, err = h.consultationStore.Count(ctx); err != nil {
		h.logger.Warn("failed to count consultations")
	}

	templates.Render(w, r, "editor/consultation_list", vm)
}
