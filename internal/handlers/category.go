// internal/handlers/category.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GET /api/categories
// Like reviews, categories come back as a bare array.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// POST /api/categories
func (h *CategoryHandler) CreateCategories(c *gin.Context) {
	var reqs []services.CategoryRequest
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

	if err := h.categoryService.CreateCategories(reqs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Categories created successfully"})
}

// PATCH /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.categoryService.UpdateCategory(id, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category updated successfully"})
}

// DELETE /api/categories
func (h *CategoryHandler) DeleteCategories(c *gin.Context) {
	ids, ok := bindIDList(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategories(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Categories deleted successfully"})
}
