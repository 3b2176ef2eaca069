package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
)

// RegistrationHandler handles REST API requests for registration jobs.
type RegistrationHandler struct {
	svc Service
}

// NewHandler creates a new RegistrationHandler with the given service.
func NewHandler(svc Service) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// Kinds handles GET /api/v1/registrations.
func (h *RegistrationHandler) Kinds(c *gin.Context) {
	pkg.Success(c, h.svc.Kinds())
}

// Submit handles POST /api/v1/registrations/:kind/jobs.
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var payload domain.Record
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.Response{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
			Data:    nil,
		})
		return
	}

	job, err := h.svc.Submit(c.Request.Context(), c.Param("kind"), payload)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, pkg.Response{
		Code:    http.StatusAccepted,
		Message: "job submitted",
		Data:    job,
	})
}

// Get handles GET /api/v1/registrations/:kind/jobs/:id.
func (h *RegistrationHandler) Get(c *gin.Context) {
	job, err := h.svc.Get(c.Request.Context(), c.Param("kind"), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, job)
}

// List handles GET /api/v1/registrations/:kind/jobs.
func (h *RegistrationHandler) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), c.Param("kind"), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, page)
}
