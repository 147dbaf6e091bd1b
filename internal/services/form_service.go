// internal/services/form_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type FormService struct {
	db    *gorm.DB
	media *MediaService
}

func NewFormService(db *gorm.DB, media *MediaService) *FormService {
	return &FormService{
		db:    db,
		media: media,
	}
}

type FormRequest struct {
	Name       BilingualName `json:"name" validate:"required"`
	ChangeForm float64       `json:"changeForm"`
	Image      string        `json:"image" validate:"required"`
}

// FormUpdateRequest deliberately has no image field: the stored form
// image is only written at creation.
type FormUpdateRequest struct {
	Name       BilingualName `json:"name" validate:"required"`
	ChangeForm float64       `json:"changeForm"`
}

func (s *FormService) ListForms() ([]FormView, error) {
	var forms []models.Form
	if err := s.db.Find(&forms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch forms: %w", err)
	}

	views := make([]FormView, 0, len(forms))
	for _, f := range forms {
		views = append(views, FormView{
			ID:         f.ID,
			RuName:     f.RuName,
			EnName:     f.EnName,
			ChangeForm: f.ChangeForm,
			Image:      s.media.ResolveURL(f.Image),
		})
	}
	return views, nil
}

// CreateForms materializes each form's image under the storage root
// before inserting the batch.
func (s *FormService) CreateForms(reqs []FormRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		rows := make([]models.Form, 0, len(reqs))
		for _, req := range reqs {
			id := utils.NewID(utils.PrefixForm)

			rel, err := s.media.SaveImage(req.Image, fmt.Sprintf("%d_form.png", id))
			if err != nil {
				return err
			}

			rows = append(rows, models.Form{
				BaseModel:  models.BaseModel{ID: id},
				RuName:     req.Name.RuName,
				EnName:     req.Name.EnName,
				ChangeForm: req.ChangeForm,
				Image:      rel,
			})
		}

		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to create forms: %w", err)
		}
		return nil
	})
}

func (s *FormService) UpdateForm(id int64, req *FormUpdateRequest) error {
	updates := map[string]interface{}{
		"ru_name":     req.Name.RuName,
		"en_name":     req.Name.EnName,
		"change_form": req.ChangeForm,
	}

	result := s.db.Model(&models.Form{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update form: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FormService) DeleteForms(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Form{}).Error; err != nil {
		return fmt.Errorf("failed to delete forms: %w", err)
	}
	return nil
}
