package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Abhiraj235/GearGo/internal/auth"
	"github.com/Abhiraj235/GearGo/internal/middleware"
	"github.com/Abhiraj235/GearGo/internal/model"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, fmt.Errorf("%w: malformed body", model.ErrInvalid))
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		h.fail(w, fmt.Errorf("%w: email, password and name required", model.ErrInvalid))
		return
	}
	if len(req.Password) < 8 {
		h.fail(w, fmt.Errorf("%w: password too short", model.ErrInvalid))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.fail(w, err)
		return
	}

	u := &model.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         model.RoleUser,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, model.ErrConflict) {
			// dup email, but don't say which field collided
			h.fail(w, fmt.Errorf("%w: registration failed", model.ErrConflict))
			return
		}
		h.fail(w, err)
		return
	}

	if err := h.issueSession(w, r, u.ID); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, map[string]any{"userId": u.ID, "name": u.Name})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, fmt.Errorf("%w: malformed body", model.ErrInvalid))
		return
	}
	if req.Email == "" || req.Password == "" {
		h.fail(w, fmt.Errorf("%w: email and password required", model.ErrInvalid))
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if errors.Is(err, model.ErrNotFound) {
		h.fail(w, fmt.Errorf("%w: invalid credentials", model.ErrUnauthorized))
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.fail(w, fmt.Errorf("%w: invalid credentials", model.ErrUnauthorized))
		return
	}

	if err := h.issueSession(w, r, u.ID); err != nil {
		h.fail(w, err)
		return
	}
	h.respond(w, map[string]any{"userId": u.ID, "name": u.Name})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie("refresh_token")
	if err != nil || c.Value == "" {
		h.fail(w, fmt.Errorf("%w: missing refresh token", model.ErrUnauthorized))
		return
	}

	sn, err := h.store.SessionByTokenHash(r.Context(), auth.HashRefreshToken(c.Value))
	if errors.Is(err, model.ErrNotFound) {
		h.fail(w, fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized))
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	if sn.Revoked {
		// reuse of a rotated token: assume theft, cut every session
		_ = h.store.RevokeUserSessions(r.Context(), sn.UserID)
		h.fail(w, fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized))
		return
	}
	if time.Now().After(sn.ExpiresAt) {
		h.fail(w, fmt.Errorf("%w: refresh token expired", model.ErrUnauthorized))
		return
	}

	access, err := auth.MakeToken(sn.UserID, h.secret, h.accessTTL)
	if err != nil {
		h.fail(w, err)
		return
	}
	rawRefresh, tokenHash, err := auth.GenerateRefreshToken()
	if err != nil {
		h.fail(w, err)
		return
	}
	if _, err := h.store.RotateSession(r.Context(), sn.ID, sn.UserID, tokenHash, time.Now().Add(h.refreshTTL)); err != nil {
		h.fail(w, err)
		return
	}

	setAuthCookies(w, access, rawRefresh, h.accessTTL, h.refreshTTL)
	h.respond(w, map[string]any{"userId": sn.UserID})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("refresh_token"); err == nil && c.Value != "" {
		if sn, err := h.store.SessionByTokenHash(r.Context(), auth.HashRefreshToken(c.Value)); err == nil {
			if err := h.store.RevokeUserSessions(r.Context(), sn.UserID); err != nil {
				h.fail(w, err)
				return
			}
		}
	} else if uid, ok := middleware.UserID(r.Context()); ok {
		if err := h.store.RevokeUserSessions(r.Context(), uid); err != nil {
			h.fail(w, err)
			return
		}
	}

	clearAuthCookies(w)
	h.respond(w, map[string]string{"message": "logged out"})
}

// issueSession mints the access token, persists a refresh session and sets
// both httponly cookies.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, userID string) error {
	access, err := auth.MakeToken(userID, h.secret, h.accessTTL)
	if err != nil {
		return err
	}
	rawRefresh, tokenHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return err
	}
	if _, err := h.store.CreateSession(r.Context(), userID, tokenHash, time.Now().Add(h.refreshTTL)); err != nil {
		return err
	}
	setAuthCookies(w, access, rawRefresh, h.accessTTL, h.refreshTTL)
	return nil
}

func setAuthCookies(w http.ResponseWriter, access, refresh string, accessTTL, refreshTTL time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    access,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(accessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Path:     "/auth",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(refreshTTL.Seconds()),
	})
}

func clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "", Path: "/", HttpOnly: true, MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "", Path: "/auth", HttpOnly: true, MaxAge: -1})
}
