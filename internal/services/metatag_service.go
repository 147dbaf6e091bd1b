// internal/services/metatag_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type MetatagService struct {
	db *gorm.DB
}

func NewMetatagService(db *gorm.DB) *MetatagService {
	return &MetatagService{db: db}
}

type MetatagRequest struct {
	Address     string `json:"address" validate:"required"`
	Title       string `json:"title" validate:"required,max=60"`
	Description string `json:"description" validate:"max=160"`
	Keywords    string `json:"keywords"`
}

// MetatagUpdateRequest updates the SEO fields of the page addressed
// by its slug; the address itself is immutable.
type MetatagUpdateRequest struct {
	Title       string `json:"title" validate:"required,max=60"`
	Description string `json:"description" validate:"max=160"`
	Keywords    string `json:"keywords"`
}

type MetatagView struct {
	ID          int64  `json:"id"`
	Address     string `json:"address"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

func (s *MetatagService) ListMetatags() ([]MetatagView, error) {
	var metatags []models.Metatag
	if err := s.db.Find(&metatags).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch metatags: %w", err)
	}

	views := make([]MetatagView, 0, len(metatags))
	for _, m := range metatags {
		views = append(views, MetatagView{
			ID:          m.ID,
			Address:     m.Address,
			Title:       m.Title,
			Description: m.Description,
			Keywords:    m.Keywords,
		})
	}
	return views, nil
}

// CreateMetatags checks the unique addresses proactively, both against
// the table and within the batch itself, and reports a conflict before
// attempting the write.
func (s *MetatagService) CreateMetatags(reqs []MetatagRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	addresses, err := collectMetatagAddresses(reqs)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Metatag{}).Where("address IN ?", addresses).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check metatag addresses: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: metatag address", ErrConflict)
		}

		rows := make([]models.Metatag, 0, len(reqs))
		for _, req := range reqs {
			rows = append(rows, models.Metatag{
				BaseModel:   models.BaseModel{ID: utils.NewID(utils.PrefixMetatag)},
				Address:     req.Address,
				Title:       req.Title,
				Description: req.Description,
				Keywords:    req.Keywords,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create metatags: %w", err)
		}
		return nil
	})
}

// collectMetatagAddresses rejects a batch that repeats an address
// internally before any table lookup happens.
func collectMetatagAddresses(reqs []MetatagRequest) ([]string, error) {
	addresses := make([]string, 0, len(reqs))
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		if seen[req.Address] {
			return nil, fmt.Errorf("%w: metatag address %q", ErrConflict, req.Address)
		}
		seen[req.Address] = true
		addresses = append(addresses, req.Address)
	}
	return addresses, nil
}

func (s *MetatagService) UpdateMetatag(address string, req *MetatagUpdateRequest) error {
	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"keywords":    req.Keywords,
	}

	result := s.db.Model(&models.Metatag{}).Where("address = ?", address).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update metatag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MetatagService) DeleteMetatags(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Metatag{}).Error; err != nil {
		return fmt.Errorf("failed to delete metatags: %w", err)
	}
	return nil
}
