package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"commune/internal/apperr"
)

// Meta carries pagination info alongside list responses.
type Meta struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
}

// OK writes the success envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"status": true, "data": data})
}

// OKPage writes the success envelope for a paginated list.
func OKPage(c *gin.Context, data any, meta Meta) {
	c.JSON(http.StatusOK, gin.H{"status": true, "data": data, "meta": meta})
}

// Fail is the terminal error dispatcher: every error path in the API goes
// through here. Known kinds render the structured list; anything else
// renders a bare message. The status is a fixed 400 in both branches,
// internal failures included.
func Fail(c *gin.Context, err error) {
	if items, ok := apperr.Serialize(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": false, "errors": items})
		return
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
}
