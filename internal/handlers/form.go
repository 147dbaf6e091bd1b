// internal/handlers/form.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type FormHandler struct {
	formService *services.FormService
}

func NewFormHandler(formService *services.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// GET /api/forms
func (h *FormHandler) GetForms(c *gin.Context) {
	forms, err := h.formService.ListForms()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"forms": forms})
}

// POST /api/forms
func (h *FormHandler) CreateForms(c *gin.Context) {
	var reqs []services.FormRequest
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

	if err := h.formService.CreateForms(reqs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Forms created successfully"})
}

// PATCH /api/forms/:id
func (h *FormHandler) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.FormUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.formService.UpdateForm(id, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Form updated successfully"})
}

// DELETE /api/forms
func (h *FormHandler) DeleteForms(c *gin.Context) {
	ids, ok := bindIDList(c)
	if !ok {
		return
	}

	if err := h.formService.DeleteForms(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Forms deleted successfully"})
}
