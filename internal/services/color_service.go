// internal/services/color_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type ColorService struct {
	db *gorm.DB
}

func NewColorService(db *gorm.DB) *ColorService {
	return &ColorService{db: db}
}

type BilingualName struct {
	RuName string `json:"ru_name" validate:"required"`
	EnName string `json:"en_name" validate:"required"`
}

// ColorRequest carries the bilingual name plus the RGB value. The RGB
// string is stored as-is; there is no format validation on it.
type ColorRequest struct {
	Name BilingualName `json:"name" validate:"required"`
	RGB  string        `json:"rgb"`
}

func (s *ColorService) ListColors() ([]ColorView, error) {
	var colors []models.Color
	if err := s.db.Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch colors: %w", err)
	}

	views := make([]ColorView, 0, len(colors))
	for _, c := range colors {
		views = append(views, ColorView{
			ID:     c.ID,
			RuName: c.RuName,
			EnName: c.EnName,
			RGB:    c.RGB,
		})
	}
	return views, nil
}

func (s *ColorService) CreateColors(reqs []ColorRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	rows := make([]models.Color, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, models.Color{
			BaseModel: models.BaseModel{ID: utils.NewID(utils.PrefixColor)},
			RuName:    req.Name.RuName,
			EnName:    req.Name.EnName,
			RGB:       req.RGB,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create colors: %w", err)
	}
	return nil
}

func (s *ColorService) UpdateColor(id int64, req *ColorRequest) error {
	updates := map[string]interface{}{
		"ru_name": req.Name.RuName,
		"en_name": req.Name.EnName,
		"rgb":     req.RGB,
	}

	result := s.db.Model(&models.Color{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update color: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ColorService) DeleteColors(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Color{}).Error; err != nil {
		return fmt.Errorf("failed to delete colors: %w", err)
	}
	return nil
}
