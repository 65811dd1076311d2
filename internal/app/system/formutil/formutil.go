// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
// - All the context data needed for the form (dropdowns, etc.)
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields, and helper functions to populate them.
//
// Example usage:
//
//	type editServiceData struct {
//		formutil.Base
//		Title       string
//		Description string
//	}
//
//	// In your handler:
//	data := editServiceData{
//		Base: formutil.NewBase(r, "Edit Service", "/admin/services"),
//		Title: title,
//		Description: description,
//	}
//	data.Error = template.HTML("Title is required.")
//	templates.Render(w, r, "editor/service_edit", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/bimaah/advisoryhub/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
// It embeds viewdata.BaseVM for site identity and user context, and adds Error for form validation.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// NewBase creates a fully populated Base for a form page.
// This is the preferred way to create a Base for embedding in form view models.
func NewBase(r *http.Request, title, backDefault string) Base {
	return Base{
		BaseVM: viewdata.NewBaseVM(r, title, backDefault),
	}
}

// SetError sets the error message on a Base struct.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
