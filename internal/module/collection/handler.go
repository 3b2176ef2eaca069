package collection

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/pkg"
)

// CollectionHandler handles REST API requests for collection pages.
type CollectionHandler struct {
	svc Service
}

// NewHandler creates a new CollectionHandler with the given service.
func NewHandler(svc Service) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// Collections handles GET /api/v1/collections.
func (h *CollectionHandler) Collections(c *gin.Context) {
	pkg.Success(c, h.svc.Collections())
}

// List handles GET /api/v1/collections/:collection.
func (h *CollectionHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Param("collection"), pkg.ParseListQuery(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Get handles GET /api/v1/collections/:collection/:id.
func (h *CollectionHandler) Get(c *gin.Context) {
	result, err := h.svc.Get(c.Request.Context(), c.Param("collection"), c.Param("id"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Patch handles PATCH /api/v1/collections/:collection/:id.
// The body is a partial record bag; only the supplied keys change.
func (h *CollectionHandler) Patch(c *gin.Context) {
	var partial domain.Record
	if err := c.ShouldBindJSON(&partial); err != nil {
		c.JSON(http.StatusBadRequest, pkg.Response{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
			Data:    nil,
		})
		return
	}

	result, err := h.svc.Patch(c.Request.Context(), c.Param("collection"), c.Param("id"), partial)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, result)
}

// Delete handles DELETE /api/v1/collections/:collection/:id.
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("collection"), c.Param("id")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}
