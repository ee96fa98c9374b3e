package scope

import (
	"github.com/gin-gonic/gin"

	"ai-health-platform/internal/model"
)

const ginContextKey = "x-user-scope"

// SetToContext attaches a verified scope to the gin context
func SetToContext(c *gin.Context, sc model.Scope) {
	c.Set(ginContextKey, sc)
}

// FromContext retrieves the scope set by the auth middleware
func FromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ginContextKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
