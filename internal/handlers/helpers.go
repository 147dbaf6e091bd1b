// internal/handlers/helpers.go
package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, "invalid id")
		return 0, false
	}
	return id, true
}

// bindIDList reads the bulk-delete body, which is a bare JSON array
// of IDs rather than an object.
func bindIDList(c *gin.Context) ([]int64, bool) {
	var ids []int64
	if err := c.ShouldBindJSON(&ids); err != nil {
		utils.BadRequestResponse(c, "expected a JSON array of ids")
		return nil, false
	}
	return ids, true
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidImage):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalErrorResponse(c, err.Error())
	}
}
