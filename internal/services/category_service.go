// internal/services/category_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

type CategoryRequest struct {
	RuName      string           `json:"ru_name" validate:"required"`
	EnName      string           `json:"en_name" validate:"required"`
	Address     string           `json:"address" validate:"required"`
	PreCategory models.Int64List `json:"preCategory"`
}

type CategoryView struct {
	ID          int64             `json:"id"`
	RuName      string            `json:"ru_name"`
	EnName      string            `json:"en_name"`
	Address     string            `json:"address"`
	PreCategory []PreCategoryView `json:"preCategory"`
}

// ListCategories resolves each category's embedded precategory ID
// list against one map of all precategories, dropping IDs that no
// longer resolve.
func (s *CategoryService) ListCategories() ([]CategoryView, error) {
	var views []CategoryView

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var categories []models.Category
		if err := tx.Find(&categories).Error; err != nil {
			return fmt.Errorf("failed to fetch categories: %w", err)
		}

		var preCategories []models.PreCategory
		if err := tx.Find(&preCategories).Error; err != nil {
			return fmt.Errorf("failed to fetch precategories: %w", err)
		}

		index := make(map[int64]PreCategoryView, len(preCategories))
		for _, pc := range preCategories {
			index[pc.ID] = PreCategoryView{
				ID:      pc.ID,
				RuName:  pc.RuName,
				EnName:  pc.EnName,
				Address: pc.Address,
			}
		}

		views = make([]CategoryView, 0, len(categories))
		for _, c := range categories {
			resolved := make([]PreCategoryView, 0, len(c.PreCategory))
			for _, id := range c.PreCategory {
				if view, ok := index[id]; ok {
					resolved = append(resolved, view)
				}
			}
			views = append(views, CategoryView{
				ID:          c.ID,
				RuName:      c.RuName,
				EnName:      c.EnName,
				Address:     c.Address,
				PreCategory: resolved,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

func (s *CategoryService) CreateCategories(reqs []CategoryRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	rows := make([]models.Category, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, models.Category{
			BaseModel:   models.BaseModel{ID: utils.NewID(utils.PrefixCategory)},
			RuName:      req.RuName,
			EnName:      req.EnName,
			Address:     req.Address,
			PreCategory: req.PreCategory,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create categories: %w", err)
	}
	return nil
}

func (s *CategoryService) UpdateCategory(id int64, req *CategoryRequest) error {
	updates := map[string]interface{}{
		"ru_name":      req.RuName,
		"en_name":      req.EnName,
		"address":      req.Address,
		"pre_category": req.PreCategory,
	}

	result := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CategoryService) DeleteCategories(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Category{}).Error; err != nil {
		return fmt.Errorf("failed to delete categories: %w", err)
	}
	return nil
}
