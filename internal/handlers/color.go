// internal/handlers/color.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type ColorHandler struct {
	colorService *services.ColorService
}

func NewColorHandler(colorService *services.ColorService) *ColorHandler {
	return &ColorHandler{colorService: colorService}
}

// GET /api/colors
func (h *ColorHandler) GetColors(c *gin.Context) {
	colors, err := h.colorService.ListColors()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"colors": colors})
}

// POST /api/colors
func (h *ColorHandler) CreateColors(c *gin.Context) {
	var reqs []services.ColorRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	for i := range reqs {
		if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&reqs[i])); len(validationErrors) > 0 {
			utils.ValidationErrorResponse(c, validationErrors)
			return
		}
	}

	if err := h.colorService.CreateColors(reqs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Colors created successfully"})
}

// PATCH /api/colors/:id
func (h *ColorHandler) UpdateColor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.colorService.UpdateColor(id, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Color updated successfully"})
}

// DELETE /api/colors
func (h *ColorHandler) DeleteColors(c *gin.Context) {
	ids, ok := bindIDList(c)
	if !ok {
		return
	}

	if err := h.colorService.DeleteColors(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Colors deleted successfully"})
}
