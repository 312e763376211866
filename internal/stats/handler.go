package stats

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/analysis"
	"jobboard-backend/internal/jobs"
	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// Handler serves job statistics.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the stats route. pre runs before the handler,
// e.g. a rate limiter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, pre ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, pre...), h.get)
	rg.GET("/jobs/:id/stats", handlers...)
}

func (h *Handler) get(c *gin.Context) {
	jobID := c.Param("id")
	c.Set(middleware.JobIDKey, jobID)

	result, err := h.Svc.ForJob(c.Request.Context(), jobID)
	if err != nil {
		var inErr *analysis.InputError
		switch {
		case errors.Is(err, jobs.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "Job not found", nil)
		case errors.As(err, &inErr):
			details := map[string]any{"reason": inErr.Reason}
			if inErr.Field != "" {
				details["field"] = inErr.Field
			}
			if inErr.Row >= 0 {
				details["row"] = inErr.Row
			}
			respond.Error(c, http.StatusUnprocessableEntity, "insufficient_data", "not enough usable applications to compute statistics", details)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute statistics", nil)
		}
		return
	}

	c.Set(middleware.FiguresKey, len(result.Figures))
	respond.OK(c, result)
}
