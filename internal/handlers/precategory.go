// internal/handlers/precategory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type PreCategoryHandler struct {
	preCategoryService *services.PreCategoryService
}

func NewPreCategoryHandler(preCategoryService *services.PreCategoryService) *PreCategoryHandler {
	return &PreCategoryHandler{preCategoryService: preCategoryService}
}

// GET /api/precategories
func (h *PreCategoryHandler) GetPreCategories(c *gin.Context) {
	preCategories, err := h.preCategoryService.ListPreCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"preCategories": preCategories})
}

// POST /api/precategories
func (h *PreCategoryHandler) CreatePreCategories(c *gin.Context) {
	var reqs []services.PreCategoryInput
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

	if err := h.preCategoryService.CreatePreCategories(reqs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Pre-categories created successfully"})
}

// PATCH /api/precategories/:id
func (h *PreCategoryHandler) UpdatePreCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.PreCategoryInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.preCategoryService.UpdatePreCategory(id, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Pre-category updated successfully"})
}

// DELETE /api/precategories
func (h *PreCategoryHandler) DeletePreCategories(c *gin.Context) {
	ids, ok := bindIDList(c)
	if !ok {
		return
	}

	if err := h.preCategoryService.DeletePreCategories(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "preCategories deleted successfully"})
}
