// internal/app/features/editor/content.go
package editor

import (
	"net/http"
	"net/url"

	contentstore "github.com/bimaah/advisoryhub/internal/app/store/content"
	"github.com/bimaah/advisoryhub/internal/app/system/formutil"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ContentRoutes returns a chi.Router with the singleton page editors
// mounted. Each document gets its own edit form; saving writes only the
// form's fields, so documents saved by older editor versions keep any
// extra fields they carry.
func ContentRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.listContent)
	r.Get("/hero/edit", h.editHero)
	r.Post("/hero", h.updateHero)
	r.Get("/home/edit", h.editHome)
	r.Post("/home", h.updateHome)
	r.Get("/contact/edit", h.editContact)
	r.Post("/contact", h.updateContact)
	r.Get("/about/edit", h.editAbout)
	r.Post("/about", h.updateAbout)
	r.Get("/privacy/edit", h.editPrivacy)
	r.Post("/privacy", h.updatePrivacy)
	return r
}

// ContentEntry is one row in the content section list.
type ContentEntry struct {
	DocID string
	Label string
}

type contentListVM struct {
	formutil.Base
	Entries []ContentEntry
}

// contentLabels maps singleton doc ids to the names shown in the editor.
var contentLabels = map[string]string{
	models.ContentDocHero:    "Hero Banner",
	models.ContentDocHome:    "Home Page",
	models.ContentDocContact: "Contact Details",
	models.ContentDocAbout:   "About Page",
	models.ContentDocPrivacy: "Privacy Policy",
}

func (h *Handler) listContent(w http.ResponseWriter, r *http.Request) {
	vm := contentListVM{
		Base: formutil.NewBase(r, "Site Content", "/admin"),
	}
	for _, docID := range models.AllContentDocIDs() {
		vm.Entries = append(vm.Entries, ContentEntry{
			DocID: docID,
			Label: contentLabels[docID],
		})
	}
	templates.Render(w, r, "editor/content_list", vm)
}

// saved reports whether the request carries the post-save success flag.
func saved(r *http.Request) bool {
	return r.URL.Query().Get("success") == "1"
}

// redirectSaved sends the post-redirect-get response after a successful save.
func redirectSaved(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path+"?success=1", http.StatusSeeOther)
}

const saveFailedError = "Failed to save changes. Please try again."

// --- hero ---

type heroFormVM struct {
	formutil.Base
	Record  models.HeroContent
	Success bool
}

func (h *Handler) heroVM(r *http.Request, rec models.HeroContent) heroFormVM {
	return heroFormVM{
		Base:    formutil.NewBase(r, "Edit Hero Banner", "/admin/content"),
		Record:  rec,
		Success: saved(r),
	}
}

func (h *Handler) editHero(w http.ResponseWriter, r *http.Request) {
	rec, err := h.contentStore.Hero(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load hero content", err)
		rec = models.DefaultHeroContent()
	}
	templates.Render(w, r, "editor/content_hero", h.heroVM(r, rec))
}

func parseHeroForm(values url.Values) models.HeroContent {
	return models.HeroContent{
		ID:           models.ContentDocHero,
		Heading:      field(values, "heading"),
		Subtext:      field(values, "subtext"),
		CTAPrimary:   field(values, "cta_primary"),
		CTASecondary: field(values, "cta_secondary"),
	}
}

func (h *Handler) updateHero(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rec := parseHeroForm(r.Form)

	vm := h.heroVM(r, rec)
	if tooLong(rec.Heading, rec.Subtext, rec.CTAPrimary, rec.CTASecondary) {
		vm.SetError(lengthError)
		templates.Render(w, r, "editor/content_hero", vm)
		return
	}

	if err := h.contentStore.Upsert(r.Context(), models.ContentDocHero, contentstore.FieldsFromHero(rec)); err != nil {
		h.errLog.Log(r, "failed to save hero content", err)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/content_hero", vm)
		return
	}
	redirectSaved(w, r, "/admin/content/hero/edit")
}

// --- home ---

type homeFormVM struct {
	formutil.Base
	Record  models.HomeContent
	Success bool
}

func (h *Handler) homeVM(r *http.Request, rec models.HomeContent) homeFormVM {
	return homeFormVM{
		Base:    formutil.NewBase(r, "Edit Home Page", "/admin/content"),
		Record:  rec,
		Success: saved(r),
	}
}

func (h *Handler) editHome(w http.ResponseWriter, r *http.Request) {
	rec, err := h.contentStore.Home(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load home content", err)
		rec = models.DefaultHomeContent()
	}
	templates.Render(w, r, "editor/content_home", h.homeVM(r, rec))
}

func parseHomeForm(values url.Values) models.HomeContent {
	return models.HomeContent{
		ID:                  models.ContentDocHome,
		Heading:             field(values, "heading"),
		Subtext:             field(values, "subtext"),
		CTAPrimary:          field(values, "cta_primary"),
		CTASecondary:        field(values, "cta_secondary"),
		ServicesTitle:       field(values, "services_title"),
		ServicesDescription: field(values, "services_description"),
		CallUsTitle:         field(values, "call_us_title"),
		CallUsText:          field(values, "call_us_text"),
	}
}

func (h *Handler) updateHome(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rec := parseHomeForm(r.Form)

	vm := h.homeVM(r, rec)
	if tooLong(rec.Heading, rec.Subtext, rec.CTAPrimary, rec.CTASecondary,
		rec.ServicesTitle, rec.ServicesDescription, rec.CallUsTitle, rec.CallUsText) {
		vm.SetError(lengthError)
		templates.Render(w, r, "editor/content_home", vm)
		return
	}

	if err := h.contentStore.Upsert(r.Context(), models.ContentDocHome, contentstore.FieldsFromHome(rec)); err != nil {
		h.errLog.Log(r, "failed to save home content", err)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/content_home", vm)
		return
	}
	redirectSaved(w, r, "/admin/content/home/edit")
}

// --- contact ---

type contactFormVM struct {
	formutil.Base
	Record  models.ContactInfo
	Success bool
}

func (h *Handler) contactVM(r *http.Request, rec models.ContactInfo) contactFormVM {
	return contactFormVM{
		Base:    formutil.NewBase(r, "Edit Contact Details", "/admin/content"),
		Record:  rec,
		Success: saved(r),
	}
}

func (h *Handler) editContact(w http.ResponseWriter, r *http.Request) {
	rec, err := h.contentStore.Contact(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact content", err)
		rec = models.DefaultContactInfo()
	}
	templates.Render(w, r, "editor/content_contact", h.contactVM(r, rec))
}

func parseContactForm(values url.Values) models.ContactInfo {
	return models.ContactInfo{
		ID:                models.ContentDocContact,
		Phone:             field(values, "phone"),
		Email:             field(values, "email"),
		Address:           field(values, "address"),
		PhoneAvailability: field(values, "phone_availability"),
		OpeningHours:      field(values, "opening_hours"),
		Instagram:         field(values, "instagram"),
		Facebook:          field(values, "facebook"),
		TikTok:            field(values, "tiktok"),
	}
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rec := parseContactForm(r.Form)

	vm := h.contactVM(r, rec)
	if tooLong(rec.Phone, rec.Email, rec.Address, rec.PhoneAvailability,
		rec.OpeningHours, rec.Instagram, rec.Facebook, rec.TikTok) {
		vm.SetError(lengthError)
		templates.Render(w, r, "editor/content_contact", vm)
		return
	}

	if err := h.contentStore.Upsert(r.Context(), models.ContentDocContact, contentstore.FieldsFromContact(rec)); err != nil {
		h.errLog.Log(r, "failed to save contact content", err)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/content_contact", vm)
		return
	}
	redirectSaved(w, r, "/admin/content/contact/edit")
}

// --- about ---

type aboutFormVM struct {
	formutil.Base
	Record  models.AboutContent
	Success bool
}

func (h *Handler) aboutVM(r *http.Request, rec models.AboutContent) aboutFormVM {
	return aboutFormVM{
		Base:    formutil.NewBase(r, "Edit About Page", "/admin/content"),
		Record:  rec,
		Success: saved(r),
	}
}

func (h *Handler) editAbout(w http.ResponseWriter, r *http.Request) {
	rec, err := h.contentStore.About(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load about content", err)
		rec = models.DefaultAboutContent()
	}
	templates.Render(w, r, "editor/content_about", h.aboutVM(r, rec))
}

func parseAboutForm(values url.Values) models.AboutContent {
	rec := models.AboutContent{
		ID:               models.ContentDocAbout,
		Title:            field(values, "title"),
		Paragraph1:       field(values, "paragraph1"),
		Paragraph2:       field(values, "paragraph2"),
		Paragraph3:       field(values, "paragraph3"),
		ValuesTitle:      field(values, "values_title"),
		ClosingStatement: field(values, "closing_statement"),
	}

	// Values rows arrive as parallel arrays. Rows left entirely blank
	// are dropped, which is how an admin removes a value.
	titles := values["value_title"]
	descriptions := values["value_description"]
	n := len(titles)
	if len(descriptions) > n {
		n = len(descriptions)
	}
	for i := 0; i < n; i++ {
		var v models.AboutValue
		if i < len(titles) {
			v.Title = fieldValue(titles[i])
		}
		if i < len(descriptions) {
			v.Description = fieldValue(descriptions[i])
		}
		if v.Title == "" && v.Description == "" {
			continue
		}
		rec.Values = append(rec.Values, v)
	}
	return rec
}

func (h *Handler) updateAbout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rec := parseAboutForm(r.Form)

	fields := []string{
		rec.Title, rec.Paragraph1, rec.Paragraph2, rec.Paragraph3,
		rec.ValuesTitle, rec.ClosingStatement,
	}
	for _, v := range rec.Values {
		fields = append(fields, v.Title, v.Description)
	}

	vm := h.aboutVM(r, rec)
	if tooLong(fields...) {
		vm.SetError(lengthError)
		templates.Render(w, r, "editor/content_about", vm)
		return
	}

	if err := h.contentStore.Upsert(r.Context(), models.ContentDocAbout, contentstore.FieldsFromAbout(rec)); err != nil {
		h.errLog.Log(r, "failed to save about content", err)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/content_about", vm)
		return
	}
	redirectSaved(w, r, "/admin/content/about/edit")
}

// --- privacy ---

type privacyFormVM struct {
	formutil.Base
	Record  models.PrivacyPolicy
	Success bool
}

func (h *Handler) privacyVM(r *http.Request, rec models.PrivacyPolicy) privacyFormVM {
	return privacyFormVM{
		Base:    formutil.NewBase(r, "Edit Privacy Policy", "/admin/content"),
		Record:  rec,
		Success: saved(r),
	}
}

func (h *Handler) editPrivacy(w http.ResponseWriter, r *http.Request) {
	rec, err := h.contentStore.Privacy(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load privacy content", err)
		rec = models.DefaultPrivacyPolicy()
	}
	templates.Render(w, r, "editor/content_privacy", h.privacyVM(r, rec))
}

func parsePrivacyForm(values url.Values) models.PrivacyPolicy {
	return models.PrivacyPolicy{
		ID:                         models.ContentDocPrivacy,
		LastUpdated:                field(values, "last_updated"),
		CompanyRegistration:        field(values, "company_registration"),
		WhoWeAre:                   field(values, "who_we_are"),
		Address:                    field(values, "address"),
		ContactPhone:               field(values, "contact_phone"),
		ContactEmail:               field(values, "contact_email"),
		WhatWeCollectInfo:          field(values, "what_we_collect_info"),
		CollectingDataInfo:         field(values, "collecting_data_info"),
		WhyWeUseDataInfo:           field(values, "why_we_use_data_info"),
		LegalBasisInfo:             field(values, "legal_basis_info"),
		DataStorageInfo:            field(values, "data_storage_info"),
		DataRetentionInfo:          field(values, "data_retention_info"),
		SharingDataIntro:           field(values, "sharing_data_intro"),
		SharingDataInfo:            field(values, "sharing_data_info"),
		YourRightsInfo:             field(values, "your_rights_info"),
		CookiesInfo:                field(values, "cookies_info"),
		InternationalTransfersInfo: field(values, "international_transfers_info"),
		ComplaintsInfo:             field(values, "complaints_info"),
		ComplaintsEmail1:           field(values, "complaints_email1"),
		ComplaintsEmail2:           field(values, "complaints_email2"),
		IAAPortalURL:               field(values, "iaa_portal_url"),
		IAAEmail:                   field(values, "iaa_email"),
		UpdatesInfo:                field(values, "updates_info"),
	}
}

func (h *Handler) updatePrivacy(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	rec := parsePrivacyForm(r.Form)

	vm := h.privacyVM(r, rec)
	if tooLong(
		rec.LastUpdated, rec.CompanyRegistration, rec.WhoWeAre, rec.Address,
		rec.ContactPhone, rec.ContactEmail, rec.WhatWeCollectInfo,
		rec.CollectingDataInfo, rec.WhyWeUseDataInfo, rec.LegalBasisInfo,
		rec.DataStorageInfo, rec.DataRetentionInfo, rec.SharingDataIntro,
		rec.SharingDataInfo, rec.YourRightsInfo, rec.CookiesInfo,
		rec.InternationalTransfersInfo, rec.ComplaintsInfo,
		rec.ComplaintsEmail1, rec.ComplaintsEmail2, rec.IAAPortalURL,
		rec.IAAEmail, rec.UpdatesInfo,
	) {
		vm.SetError(lengthError)
		templates.Render(w, r, "editor/content_privacy", vm)
		return
	}

	if err := h.contentStore.Upsert(r.Context(), models.ContentDocPrivacy, contentstore.FieldsFromPrivacy(rec)); err != nil {
		h.errLog.Log(r, "failed to save privacy content", err)
		vm.SetError(saveFailedError)
		templates.Render(w, r, "editor/content_privacy", vm)
		return
	}
	redirectSaved(w, r, "/admin/content/privacy/edit")
}
