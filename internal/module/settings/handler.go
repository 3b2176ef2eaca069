package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
)

// SettingsHandler handles REST API requests for platform settings.
type SettingsHandler struct {
	svc Service
}

// NewHandler creates a new SettingsHandler with the given service.
func NewHandler(svc Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get handles GET /api/v1/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	rec, err := h.svc.Get(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rec)
}

// Update handles PUT /api/v1/settings. The body is the full settings bag.
func (h *SettingsHandler) Update(c *gin.Context) {
	var values domain.Record
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, pkg.Response{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
			Data:    nil,
		})
		return
	}

	rec, err := h.svc.Update(c.Request.Context(), values)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, rec)
}
