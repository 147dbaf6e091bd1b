// internal/services/precategory_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type PreCategoryService struct {
	db *gorm.DB
}

func NewPreCategoryService(db *gorm.DB) *PreCategoryService {
	return &PreCategoryService{db: db}
}

func (s *PreCategoryService) ListPreCategories() ([]PreCategoryView, error) {
	var preCategories []models.PreCategory
	if err := s.db.Find(&preCategories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch precategories: %w", err)
	}

	views := make([]PreCategoryView, 0, len(preCategories))
	for _, pc := range preCategories {
		views = append(views, PreCategoryView{
			ID:      pc.ID,
			RuName:  pc.RuName,
			EnName:  pc.EnName,
			Address: pc.Address,
		})
	}
	return views, nil
}

// CreatePreCategories inserts the batch directly. Unlike the resolve
// step on the product write path, there is no reuse check here: the
// endpoint creates exactly what it is given.
func (s *PreCategoryService) CreatePreCategories(reqs []PreCategoryInput) error {
	if len(reqs) == 0 {
		return nil
	}

	rows := make([]models.PreCategory, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, models.PreCategory{
			BaseModel: models.BaseModel{ID: utils.NewID(utils.PrefixPreCategory)},
			Address:   req.Address,
			RuName:    req.RuName,
			EnName:    req.EnName,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create precategories: %w", err)
	}
	return nil
}

func (s *PreCategoryService) UpdatePreCategory(id int64, req *PreCategoryInput) error {
	updates := map[string]interface{}{
		"address": req.Address,
		"ru_name": req.RuName,
		"en_name": req.EnName,
	}

	result := s.db.Model(&models.PreCategory{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update precategory: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeletePreCategories removes the precategory rows only; link rows in
// the association table are left behind.
func (s *PreCategoryService) DeletePreCategories(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.PreCategory{}).Error; err != nil {
		return fmt.Errorf("failed to delete precategories: %w", err)
	}
	return nil
}
