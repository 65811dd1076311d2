package consultation

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bimaah/advisoryhub/internal/app/system/mailer"
	"github.com/bimaah/advisoryhub/internal/testutil"
	"go.uber.org/zap"
)

// fakeSender records sent emails and can be told to fail. The handler
// sends the submitter acknowledgment first, then the office alert.
type fakeSender struct {
	emails    []mailer.Email
	failAck   bool // fail the first send (the acknowledgment)
	failAlert bool // fail the second send (the office alert)
}

func (f *fakeSender) Send(email mailer.Email) error {
	n := len(f.emails)
	f.emails = append(f.emails, email)
	if n == 0 && f.failAck {
		return errors.New("smtp unavailable")
	}
	if n == 1 && f.failAlert {
		return errors.New("smtp unavailable")
	}
	return nil
}

const alertInbox = "office@bimaahinternationalltd.com"

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, nil, alertInbox, zap.NewNop())
}

func submit(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response body is not JSON: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

const validBody = `{
	"name": "Amina Yusuf",
	"email": "amina@example.com",
	"phone": "07000000000",
	"service": "immigration",
	"message": "I need help with a visa application."
}`

func TestHandleSubmit_InvalidJSON(t *testing.T) {
	h := newTestHandler(t)
	h.SetSender(&fakeSender{})

	rec := submit(t, h, "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Missing required fields" {
		t.Errorf("error = %q, want %q", got, "Missing required fields")
	}
}

func TestHandleSubmit_MissingFields(t *testing.T) {
	h := newTestHandler(t)
	sender := &fakeSender{}
	h.SetSender(sender)

	bodies := []string{
		`{"email":"a@b.com","service":"other","message":"hi"}`,
		`{"name":"A","service":"other","message":"hi"}`,
		`{"name":"A","email":"a@b.com","message":"hi"}`,
		`{"name":"A","email":"a@b.com","service":"other"}`,
		`{"name":"  ","email":"a@b.com","service":"other","message":"hi"}`,
	}
	for _, body := range bodies {
		rec := submit(t, h, body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != "Missing required fields" {
			t.Errorf("body %s: error = %q, want %q", body, got, "Missing required fields")
		}
	}
	if len(sender.emails) != 0 {
		t.Errorf("no emails should be sent for invalid submissions, got %d", len(sender.emails))
	}
}

func TestHandleSubmit_MailerNotConfigured(t *testing.T) {
	// NewHandler with a nil mailer leaves the sender nil; the endpoint
	// fails closed instead of accepting a booking nobody will see.
	h := newTestHandler(t)

	rec := submit(t, h, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "Email service not configured" {
		t.Errorf("error = %q, want %q", got, "Email service not configured")
	}
}

func TestHandleSubmit_AlertFailure(t *testing.T) {
	h := newTestHandler(t)
	sender := &fakeSender{failAlert: true}
	h.SetSender(sender)

	rec := submit(t, h, validBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	want := "Failed to send admin notification. Please try again later."
	if got := decodeBody(t, rec)["error"]; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	// The acknowledgment was already attempted before the alert failed.
	if len(sender.emails) != 2 {
		t.Errorf("sends = %d, want 2", len(sender.emails))
	}
}

func TestHandleSubmit_Success(t *testing.T) {
	h := newTestHandler(t)
	sender := &fakeSender{}
	h.SetSender(sender)

	rec := submit(t, h, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if got := decodeBody(t, rec)["message"]; got != "Consultation request submitted successfully" {
		t.Errorf("message = %q", got)
	}

	if len(sender.emails) != 2 {
		t.Fatalf("sends = %d, want 2 (acknowledgment + alert)", len(sender.emails))
	}

	ack := sender.emails[0]
	if ack.To != "amina@example.com" {
		t.Errorf("ack To = %q, want submitter email", ack.To)
	}
	if ack.Subject != "Consultation Request Received - Bimaah International" {
		t.Errorf("ack Subject = %q", ack.Subject)
	}
	if ack.ReplyTo != "" {
		t.Errorf("ack ReplyTo = %q, want empty", ack.ReplyTo)
	}

	alert := sender.emails[1]
	if alert.To != alertInbox {
		t.Errorf("alert To = %q, want %q", alert.To, alertInbox)
	}
	if alert.ReplyTo != "amina@example.com" {
		t.Errorf("alert ReplyTo = %q, want submitter email", alert.ReplyTo)
	}
	if alert.Subject != "New Consultation Request - Amina Yusuf" {
		t.Errorf("alert Subject = %q", alert.Subject)
	}
	if !strings.Contains(alert.TextBody, "Immigration Advice") {
		t.Errorf("alert body should contain the service display name")
	}
}

func TestHandleSubmit_AckFailureStillSucceeds(t *testing.T) {
	h := newTestHandler(t)
	sender := &fakeSender{failAck: true}
	h.SetSender(sender)

	rec := submit(t, h, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(sender.emails) != 2 {
		t.Errorf("sends = %d, want 2", len(sender.emails))
	}
}

func TestHandleSubmit_RecordsSubmission(t *testing.T) {
	h := newTestHandler(t)
	h.SetSender(&fakeSender{})

	rec := submit(t, h, validBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	ctx, cancel := testutil.TestContext()
	defer cancel()

	recent, err := h.store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("stored consultations = %d, want 1", len(recent))
	}
	c := recent[0]
	if c.Name != "Amina Yusuf" {
		t.Errorf("Name = %q", c.Name)
	}
	if c.Service != "immigration" || c.ServiceName != "Immigration Advice" {
		t.Errorf("Service = %q / %q", c.Service, c.ServiceName)
	}
	if c.Reference == "" {
		t.Error("stored consultation should have a generated reference")
	}
	if c.SubmittedAt.IsZero() {
		t.Error("stored consultation should have a submission time")
	}
}

func TestServiceDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"immigration", "Immigration Advice"},
		{"benefits", "Benefits & Welfare Support"},
		{"legal", "Legal Documentation"},
		{"other", "Other"},
		{"housing", "housing"}, // unknown codes pass through
		{"", ""},
	}
	for _, tt := range tests {
		if got := ServiceDisplayName(tt.code); got != tt.want {
			t.Errorf("ServiceDisplayName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
