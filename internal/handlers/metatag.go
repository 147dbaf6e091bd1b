// internal/handlers/metatag.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

type MetatagHandler struct {
	metatagService *services.MetatagService
}

func NewMetatagHandler(metatagService *services.MetatagService) *MetatagHandler {
	return &MetatagHandler{metatagService: metatagService}
}

// GET /api/metatags
func (h *MetatagHandler) GetMetatags(c *gin.Context) {
	metatags, err := h.metatagService.ListMetatags()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"metatags": metatags})
}

// POST /api/metatags
func (h *MetatagHandler) CreateMetatags(c *gin.Context) {
	var reqs []services.MetatagRequest
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

	if err := h.metatagService.CreateMetatags(reqs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"message": "Metatags created successfully"})
}

// PATCH /api/metatags/:address
// The address is the lookup key here, not a numeric ID.
func (h *MetatagHandler) UpdateMetatag(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		utils.BadRequestResponse(c, "missing address")
		return
	}

	var req services.MetatagUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.metatagService.UpdateMetatag(address, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Metatag updated successfully"})
}

// DELETE /api/metatags
func (h *MetatagHandler) DeleteMetatags(c *gin.Context) {
	ids, ok := bindIDList(c)
	if !ok {
		return
	}

	if err := h.metatagService.DeleteMetatags(ids); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Metatags deleted successfully"})
}
