package settings

import "github.com/gin-gonic/gin"

// SettingsModule implements the app.Module interface for platform settings.
type SettingsModule struct {
	handler *SettingsHandler
}

// NewModule creates a new SettingsModule with the given handler.
// Panics if h is nil.
func NewModule(h *SettingsHandler) *SettingsModule {
	if h == nil {
		panic("settings.NewModule: handler must not be nil")
	}
	return &SettingsModule{handler: h}
}

// RegisterRoutes registers settings API routes on the protected group.
func (m *SettingsModule) RegisterRoutes(public, protected *gin.RouterGroup) {
	grp := protected.Group("/settings")
	grp.GET("", m.handler.Get)
	grp.PUT("", m.handler.Update)
}
