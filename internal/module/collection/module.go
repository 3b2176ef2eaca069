package collection

import "github.com/gin-gonic/gin"

// CollectionModule implements the app.Module interface for collection pages.
type CollectionModule struct {
	handler *CollectionHandler
}

// NewModule creates a new CollectionModule with the given handler.
// Panics if h is nil.
func NewModule(h *CollectionHandler) *CollectionModule {
	if h == nil {
		panic("collection.NewModule: handler must not be nil")
	}
	return &CollectionModule{handler: h}
}

// RegisterRoutes registers collection API routes on the protected group.
func (m *CollectionModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	grp := protected.Group("/collections")
	grp.GET("", m.handler.Collections)
	grp.GET("/:collection", m.handler.List)
	grp.GET("/:collection/:id", m.handler.Get)
	grp.PATCH("/:collection/:id", m.handler.Patch)
	grp.DELETE("/:collection/:id", m.handler.Delete)
}
