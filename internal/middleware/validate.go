package middleware

import (
	"github.com/gin-gonic/gin"

	"commune/internal/httpx"
	"commune/internal/validate"
)

// ValidateJSON runs the request validator as its own pipeline stage, before
// any gate touches the body. Shape violations short-circuit with the full
// field-error batch; the parsed body stays cached for downstream binds.
func ValidateJSON[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := validate.BindJSON(c, &req); err != nil {
			httpx.Fail(c, err)
			return
		}
		c.Next()
	}
}
