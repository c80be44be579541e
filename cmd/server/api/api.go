// package api holds the HTTP controllers for the storefront REST surface.
// Controllers depend on narrow interfaces so tests can stub the store and
// the external collaborators.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/store"
)

type ProductStore interface {
	All(ctx context.Context) ([]store.Product, error)
	Create(ctx context.Context, p store.Product) (store.Product, error)
	Update(ctx context.Context, id string, p store.Product) error
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Create(ctx context.Context, o store.Order) (store.Order, error)
	All(ctx context.Context) ([]store.Order, error)
	ByStatus(ctx context.Context, status string) ([]store.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type SettingsStore interface {
	Get(ctx context.Context) (store.Settings, error)
	SetTheme(ctx context.Context, theme string) error
}

// respondStoreError maps repository failures onto the API's status codes.
func respondStoreError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, store.ErrNotReady):
		slog.WarnContext(ctx, "store not ready", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not connected"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
	default:
		slog.ErrorContext(ctx, "store operation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
