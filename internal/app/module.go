package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering business module.
// Each module registers its routes on the public or the token-protected
// API group as appropriate.
type Module interface {
	RegisterRoutes(public, protected *gin.RouterGroup)
}
