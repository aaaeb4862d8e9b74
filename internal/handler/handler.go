package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Abhiraj235/GearGo/internal/config"
	"github.com/Abhiraj235/GearGo/internal/middleware"
	"github.com/Abhiraj235/GearGo/internal/model"
	"github.com/Abhiraj235/GearGo/internal/revalidate"
	"github.com/Abhiraj235/GearGo/internal/store"
)

type Handler struct {
	store      *store.Store
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        *zap.Logger
	reval      revalidate.Revalidator
}

func New(st *store.Store, cfg *config.Config, log *zap.Logger, rv revalidate.Revalidator) *Handler {
	return &Handler{
		store:      st,
		secret:     cfg.JWTSecret,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		log:        log,
		reval:      rv,
	}
}

// resolveCaller maps the request credential to a user record. Anonymous
// callers, bad tokens and tokens whose subject no longer exists all come back
// nil with no error; the error path is store failure only.
func (h *Handler) resolveCaller(r *http.Request) (*model.User, error) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		return nil, nil
	}
	u, err := h.store.UserByID(r.Context(), uid)
	if errors.Is(err, model.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// requireAdmin gates the admin operations: resolve first, then check role,
// before any data is touched.
func (h *Handler) requireAdmin(r *http.Request) (*model.User, error) {
	u, err := h.resolveCaller(r)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: sign in required", model.ErrUnauthorized)
	}
	if u.Role != model.RoleAdmin {
		return nil, fmt.Errorf("%w: admin only", model.ErrForbidden)
	}
	return u, nil
}

// revalidateViews signals the cache invalidator. Failures are logged, never
// surfaced: the mutation already happened.
func (h *Handler) revalidateViews(ctx context.Context, views ...string) {
	if err := h.reval.Revalidate(ctx, views...); err != nil {
		h.log.Warn("revalidate failed", zap.Strings("views", views), zap.Error(err))
	}
}
