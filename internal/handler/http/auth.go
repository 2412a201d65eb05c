package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/statravel/sta/internal/logger"
	"github.com/statravel/sta/internal/service"
	"github.com/statravel/sta/internal/store"
	"github.com/statravel/sta/internal/utils"
	"github.com/statravel/sta/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.deps.Services.AuthService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.deps.Services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		User:      &user,
		Token:     token.SignedString,
		ExpiresAt: tokenExpiry(token),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.deps.Services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case invalidCredentials(err):
			log.Err(err).Msg("no user was found/wrong password")
			utils.WriteError(w, "invalid email/password", http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("user login failed")
			utils.WriteError(w, err.Error(), statusFromError(err))
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	token, err := h.deps.Services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.AuthResponse{
		Token:     token.SignedString,
		ExpiresAt: tokenExpiry(token),
	}, http.StatusOK)
}

// me returns the authenticated user's profile.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.deps.Services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{User: user}, http.StatusOK)
}

func tokenExpiry(token models.Token) string {
	if token.Token == nil {
		return ""
	}
	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return ""
	}
	return expiresAt.Time.UTC().Format(time.RFC3339)
}

// Login failures caused by bad credentials are collapsed into one 401 body
// so that callers cannot probe which emails are registered.
func invalidCredentials(err error) bool {
	return errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword)
}
