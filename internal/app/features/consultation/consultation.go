// internal/app/features/consultation/consultation.go
package consultation

import (
	"net/http"
	"strings"
	"time"

	consultationstore "github.com/bimaah/advisoryhub/internal/app/store/consultations"
	"github.com/bimaah/advisoryhub/internal/app/system/jsonutil"
	"github.com/bimaah/advisoryhub/internal/app/system/mailer"
	"github.com/bimaah/advisoryhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Sender sends a consultation email. *mailer.Mailer satisfies this; tests
// substitute a fake via SetSender.
type Sender interface {
	Send(email mailer.Email) error
}

// Handler accepts consultation requests from the public booking form.
type Handler struct {
	store   *consultationstore.Store
	sender  Sender // nil when SMTP is not configured
	alertTo string
	logger  *zap.Logger
}

// NewHandler creates a new consultation Handler. The mailer may be nil
// when SMTP is not configured; requests then fail closed with 500 rather
// than silently dropping the booking.
func NewHandler(db *mongo.Database, m *mailer.Mailer, alertTo string, logger *zap.Logger) *Handler {
	h := &Handler{
		store:   consultationstore.New(db),
		alertTo: alertTo,
		logger:  logger,
	}
	// Assign through the nil check so the interface stays nil when the
	// pointer is nil.
	if m != nil {
		h.sender = m
	}
	return h
}

// SetSender overrides the mail sender. Used by tests.
func (h *Handler) SetSender(s Sender) {
	h.sender = s
}

// Routes returns a chi.Router with the consultation API mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.handleSubmit)
	return r
}

// Request is the JSON body of a consultation submission.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// serviceNames maps the form's service codes to display names. Unknown
// codes pass through unchanged so new form options degrade gracefully.
var serviceNames = map[string]string{
	"immigration": "Immigration Advice",
	"benefits":    "Benefits & Welfare Support",
	"legal":       "Legal Documentation",
	"other":       "Other",
}

// ServiceDisplayName returns the display name for a service code.
func ServiceDisplayName(code string) string {
	if name, ok := serviceNames[code]; ok {
		return name
	}
	return code
}

// handleSubmit processes a consultation request: it records the booking,
// acknowledges the submitter, and alerts the office inbox. The office
// alert is the one delivery the submitter depends on, so its failure is
// a 500; a failed acknowledgment is only logged.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "Missing required fields")
		return
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Service) == "" ||
		strings.TrimSpace(req.Message) == "" {
		jsonutil.BadRequest(w, "Missing required fields")
		return
	}

	if h.sender == nil {
		h.logger.Error("consultation request rejected: mailer not configured",
			zap.String("email", req.Email))
		jsonutil.InternalError(w, "Email service not configured")
		return
	}

	serviceName := ServiceDisplayName(req.Service)
	submittedAt := time.Now().UTC()

	// Record the booking first so a reference exists even if email
	// delivery fails. Recording failure never blocks the request.
	record := models.Consultation{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		ServiceName: serviceName,
		Message:     req.Message,
		SubmittedAt: submittedAt,
	}
	reference, err := h.store.Insert(r.Context(), record)
	if err != nil {
		h.logger.Error("failed to record consultation request",
			zap.String("email", req.Email),
			zap.Error(err))
	}

	// Two sequential sends, acknowledgment first. Each is an independent
	// best-effort attempt: a failed acknowledgment never blocks the
	// office alert, only the alert outcome decides the response.
	if err := h.sendAck(req, serviceName, reference); err != nil {
		// The submitter just misses the confirmation copy; the office
		// alert below is the delivery that matters.
		h.logger.Warn("failed to send consultation acknowledgment",
			zap.String("email", req.Email),
			zap.Error(err))
	}

	if err := h.sendAlert(req, serviceName, reference, submittedAt); err != nil {
		h.logger.Error("failed to send consultation alert",
			zap.String("email", req.Email),
			zap.Error(err))
		jsonutil.InternalError(w, "Failed to send admin notification. Please try again later.")
		return
	}

	jsonutil.OK(w, map[string]string{
		"message": "Consultation request submitted successfully",
	})
}

// sendAck emails the submitter their confirmation copy.
func (h *Handler) sendAck(req Request, serviceName, reference string) error {
	ackText, ackHTML := mailer.ConsultationAckEmail(mailer.ConsultationAckData{
		Name:        req.Name,
		ServiceName: serviceName,
		Message:     req.Message,
		Reference:   reference,
	})
	return h.sender.Send(mailer.Email{
		To:       req.Email,
		Subject:  "Consultation Request Received - Bimaah International",
		TextBody: ackText,
		HTMLBody: ackHTML,
	})
}

// sendAlert emails the office inbox, with Reply-To set to the submitter
// so staff can answer directly.
func (h *Handler) sendAlert(req Request, serviceName, reference string, submittedAt time.Time) error {
	alertText, alertHTML := mailer.ConsultationAlertEmail(mailer.ConsultationAlertData{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceName: serviceName,
		Message:     req.Message,
		Reference:   reference,
		SubmittedAt: formatSubmitted(submittedAt),
	})
	return h.sender.Send(mailer.Email{
		To:       h.alertTo,
		ReplyTo:  req.Email,
		Subject:  "New Consultation Request - " + req.Name,
		TextBody: alertText,
		HTMLBody: alertHTML,
	})
}

// formatSubmitted renders the submission time for the office alert in UK
// local time when the zone database has it, UTC otherwise.
func formatSubmitted(t time.Time) string {
	if loc, err := time.LoadLocation("Europe/London"); err == nil {
		t = t.In(loc)
	}
	return t.Format("02 Jan 2006 15:04")
}
