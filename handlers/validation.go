package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON decodes and validates the request body. Validation failures get
// a structured field-level message instead of the raw validator dump;
// missing required fields are rejected, never silently stored as empty
// strings.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "validation failed: " + strings.Join(fields, ", "),
		})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	return false
}
