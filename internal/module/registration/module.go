package registration

import "github.com/gin-gonic/gin"

// RegistrationModule implements the app.Module interface for registration jobs.
type RegistrationModule struct {
	handler *RegistrationHandler
}

// NewModule creates a new RegistrationModule with the given handler.
// Panics if h is nil.
func NewModule(h *RegistrationHandler) *RegistrationModule {
	if h == nil {
		panic("registration.NewModule: handler must not be nil")
	}
	return &RegistrationModule{handler: h}
}

// RegisterRoutes registers registration API routes on the protected group.
func (m *RegistrationModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	grp := protected.Group("/registrations")
	grp.GET("", m.handler.Kinds)
	grp.GET("/:kind/jobs", m.handler.List)
	grp.POST("/:kind/jobs", m.handler.Submit)
	grp.GET("/:kind/jobs/:id", m.handler.Get)
}
