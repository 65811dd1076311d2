// internal/app/features/login/login.go
package login

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"
	"time"

	errorsfeature "github.com/bimaah/advisoryhub/internal/app/features/errors"
	"github.com/bimaah/advisoryhub/internal/app/store/ratelimit"
	"github.com/bimaah/advisoryhub/internal/app/system/auth"
	"github.com/bimaah/advisoryhub/internal/app/system/authutil"
	"github.com/bimaah/advisoryhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler provides login handlers for the dashboard. There is no users
// collection: the single admin identity comes from configuration, either
// a login id plus bcrypt hash or a Google account on the allowlist.
type Handler struct {
	sessionMgr        *auth.SessionManager
	errLog            *errorsfeature.ErrorLogger
	rateLimitStore    *ratelimit.Store // nil if rate limiting disabled
	adminLoginID      string
	adminPasswordHash string // empty disables password login
	googleEnabled     bool
	logger            *zap.Logger
}

// NewHandler creates a new login Handler.
// rateLimitStore can be nil to disable rate limiting.
func NewHandler(
	sessionMgr *auth.SessionManager,
	errLog *errorsfeature.ErrorLogger,
	rateLimitStore *ratelimit.Store,
	adminLoginID string,
	adminPasswordHash string,
	googleEnabled bool,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessionMgr:        sessionMgr,
		errLog:            errLog,
		rateLimitStore:    rateLimitStore,
		adminLoginID:      adminLoginID,
		adminPasswordHash: adminPasswordHash,
		googleEnabled:     googleEnabled,
		logger:            logger,
	}
}

// LoginVM is the view model for the login page.
type LoginVM struct {
	viewdata.BaseVM
	Error           string
	LoginID         string
	ReturnURL       string
	PasswordEnabled bool
	GoogleEnabled   bool
}

// Routes returns a chi.Router with login routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showLogin)
	r.Post("/", h.handleLogin)
	return r
}

// newVM builds the common login view model.
func (h *Handler) newVM(r *http.Request) LoginVM {
	vm := LoginVM{
		BaseVM:          viewdata.New(r),
		PasswordEnabled: h.adminPasswordHash != "",
		GoogleEnabled:   h.googleEnabled,
	}
	vm.Title = "Sign In"
	return vm
}

// showLogin displays the login page.
func (h *Handler) showLogin(w http.ResponseWriter, r *http.Request) {
	// Map error codes to user-friendly messages
	errorCode := query.Get(r, "error")
	errorMsg := ""
	switch errorCode {
	case "invalid_state", "token_exchange_failed", "userinfo_failed", "oauth_error", "session_error":
		errorMsg = "Google sign-in failed. Please try again."
	case "not_allowed":
		errorMsg = "That Google account is not authorised to use the dashboard."
	case "service_unavailable":
		errorMsg = "Service temporarily unavailable. Please try again."
	case "":
		// No error
	default:
		// Show the error code as-is for unknown codes
		errorMsg = errorCode
	}

	vm := h.newVM(r)
	vm.ReturnURL = query.Get(r, "return")
	vm.Error = errorMsg

	templates.Render(w, r, "login/index", vm)
}

// handleLogin verifies the configured admin credentials.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	loginID := strings.TrimSpace(r.FormValue("login_id"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	vm := h.newVM(r)
	vm.LoginID = loginID
	vm.ReturnURL = returnURL

	if h.adminPasswordHash == "" {
		vm.Error = "Password sign-in is not enabled."
		templates.Render(w, r, "login/index", vm)
		return
	}

	if loginID == "" || password == "" {
		vm.Error = "Please enter your Login ID and password"
		templates.Render(w, r, "login/index", vm)
		return
	}

	// Check rate limit before verifying anything
	if h.rateLimitStore != nil {
		allowed, _, lockedUntil := h.rateLimitStore.CheckAllowed(r.Context(), loginID)
		if !allowed {
			vm.Error = lockoutMessage(lockedUntil)
			templates.Render(w, r, "login/index", vm)
			return
		}
	}

	idMatch := subtle.ConstantTimeCompare([]byte(loginID), []byte(h.adminLoginID)) == 1
	// Run the hash comparison unconditionally so a wrong login id takes
	// the same time as a wrong password.
	passMatch := authutil.CheckPassword(password, h.adminPasswordHash)

	if !idMatch || !passMatch {
		if h.rateLimitStore != nil {
			lockedOut, lockedUntil := h.rateLimitStore.RecordFailure(r.Context(), loginID)
			if lockedOut {
				h.logger.Warn("login locked out",
					zap.String("login_id", loginID))
				vm.Error = lockoutMessage(lockedUntil)
				templates.Render(w, r, "login/index", vm)
				return
			}
		}
		h.logger.Warn("failed login attempt", zap.String("login_id", loginID))

		vm.Error = "Invalid credentials"
		templates.Render(w, r, "login/index", vm)
		return
	}

	// Clear rate limit on successful login
	if h.rateLimitStore != nil {
		h.rateLimitStore.ClearOnSuccess(r.Context(), loginID)
	}

	// The admin has no user record, so mint a fresh session identity.
	if err := h.sessionMgr.CreateSession(w, r, primitive.NewObjectID(), "admin", "Administrator", h.adminLoginID, ""); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin signed in", zap.String("login_id", loginID))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/admin"), http.StatusSeeOther)
}

// lockoutMessage formats the "try again later" error with the remaining
// lockout time when known.
func lockoutMessage(lockedUntil *time.Time) string {
	msg := "Too many failed login attempts. Please try again later."
	if lockedUntil != nil {
		remaining := time.Until(*lockedUntil)
		if remaining > time.Minute {
			msg = fmt.Sprintf("Too many failed login attempts. Please try again in %d minute(s).", int(remaining.Minutes())+1)
		} else {
			msg = fmt.Sprintf("Too many failed login attempts. Please try again in %d second(s).", int(remaining.Seconds())+1)
		}
	}
	return msg
}
