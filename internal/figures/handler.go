package figures

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
	"jobboard-backend/internal/shared/util"
)

// Handler serves stored figures.
type Handler struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches figure routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/figures/:id", h.get)
}

func (h *Handler) get(c *gin.Context) {
	raw := c.Param("id")
	c.Set(middleware.FigureIDKey, raw)

	data, err := h.Store.Load(c.Request.Context(), raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Figure not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load figure", nil)
		}
		return
	}

	etag := `"` + util.HashBytes(data) + `"`
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Header("ETag", etag)
	if match := c.GetHeader("If-None-Match"); match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
