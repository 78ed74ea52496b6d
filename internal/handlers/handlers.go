// Package handlers wires HTTP routes to the store and the AI gateway.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/architect/bacprep-backend/internal/common/errors"
	"github.com/architect/bacprep-backend/internal/common/middleware"
)

// parseIDParam reads a numeric path parameter, answering 400 itself when the
// value is not a valid id.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid "+name))
		return 0, false
	}
	return uint(value), true
}
