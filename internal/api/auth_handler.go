package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jhonfrank/bookstore-api/internal/api/shared"
	"github.com/jhonfrank/bookstore-api/internal/domain"
	"github.com/jhonfrank/bookstore-api/internal/service/auth"
	"github.com/jhonfrank/bookstore-api/internal/store"
)

// loginResponse is the data payload returned by a successful login.
type loginResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// AuthHandler handles registration and token lifecycle endpoints.
type AuthHandler struct {
	users            store.UserStore
	tokens           store.TokenStore
	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	logger           *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	tokens store.TokenStore,
	tokenService auth.TokenService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:            users,
		tokens:           tokens,
		tokenService:     tokenService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		logger:           logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	user := domain.NewUser(req.Name, req.Email, hashed)
	if err := h.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// A taken email is reported the same way as any other field
			// failure so callers get one uniform 422 shape.
			shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(
				map[string][]string{"email": {"The email has already been taken."}},
			))
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusCreated, shared.Envelope{
		Success: true,
		Data:    user,
		Message: "User successfully registered.",
	})
}

// GenerateToken handles POST /generate-token. The checks run in a fixed
// order: user lookup, password verification (both failures share the same
// message so callers cannot tell which check tripped), then the
// one-active-token rule. Login is refused, not renewed, while a live token
// exists.
func (h *AuthHandler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized("Incorrect credentials"))
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized("Incorrect credentials"))
		return
	}

	count, err := h.tokens.CountByUser(r.Context(), user.ID)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}
	if count > 0 {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("User already has an active token."))
		return
	}

	plaintext, tokenHash, err := h.tokenService.Issue(r.Context(), user.ID)
	if err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	record := domain.NewToken(user.ID, user.Email, tokenHash)
	if err := h.tokens.Create(r.Context(), record); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	h.logger.Info("token generated", slog.String("user_id", user.ID.String()))
	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OKWithMessage(
		loginResponse{User: user, Token: plaintext},
		"Token generated successfully.",
	))
}

// RevokeToken handles POST /revoke-token. It terminates the caller's
// session by deleting every token they hold. Idempotent: a caller with
// zero tokens still succeeds.
func (h *AuthHandler) RevokeToken(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		// The middleware guards this route; a missing user here is a
		// programming error, not a client one.
		shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
		return
	}

	if _, err := h.tokens.DeleteByUser(r.Context(), user.ID); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	h.logger.Info("session tokens revoked", slog.String("user_id", user.ID.String()))
	shared.RespondWithEnvelope(w, r, http.StatusNoContent, shared.Envelope{
		Success: true,
		Message: "Token has been deleted.",
	})
}

// RevokeAllTokens handles POST /revoke-all-tokens. Unlike RevokeToken it
// does not trust an existing session: credentials are re-verified with the
// same two checks and messages as login, then all tokens for the user are
// deleted in one unconditional pass.
func (h *AuthHandler) RevokeAllTokens(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusBadRequest, shared.BadRequest("Invalid request format."))
		return
	}

	if errs := shared.ValidatePayload(&req); errs != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnprocessableEntity, shared.ValidationFailed(errs))
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized("Incorrect credentials"))
			return
		}
		shared.RespondInternalError(w, r, err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized("Incorrect credentials"))
		return
	}

	if _, err := h.tokens.DeleteByUser(r.Context(), user.ID); err != nil {
		shared.RespondInternalError(w, r, err)
		return
	}

	h.logger.Info("all tokens revoked", slog.String("user_id", user.ID.String()))
	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OKWithMessage(user, "All tokens have been deleted."))
}

// UserInfo handles GET /user-info.
func (h *AuthHandler) UserInfo(w http.ResponseWriter, r *http.Request) {
	user, ok := shared.CurrentUser(r.Context())
	if !ok {
		shared.RespondWithEnvelope(w, r, http.StatusUnauthorized, shared.Unauthorized(""))
		return
	}

	shared.RespondWithEnvelope(w, r, http.StatusOK, shared.OK(user))
}
