// internal/services/review_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/models"
	"github.com/epocha/admin-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewContents mirrors the nested Contents block the admin UI
// sends and expects back.
type ReviewContents struct {
	Title       string `json:"Title" validate:"required"`
	Description string `json:"Description"`
}

type ReviewRequest struct {
	Contents  ReviewContents `json:"Contents" validate:"required"`
	Rate      int            `json:"Rate"`
	ProductID int64          `json:"ProductId"`
}

type ReviewView struct {
	ID        int64          `json:"id"`
	Contents  ReviewContents `json:"Contents"`
	Rate      int            `json:"Rate"`
	ProductID int64          `json:"ProductId"`
}

func (s *ReviewService) ListReviews() ([]ReviewView, error) {
	var reviews []models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, ReviewView{
			ID: r.ID,
			Contents: ReviewContents{
				Title:       r.Title,
				Description: r.Description,
			},
			Rate:      r.Rate,
			ProductID: r.ProductID,
		})
	}
	return views, nil
}

// CreateReviews inserts the batch with generated IDs. ProductId is an
// unenforced reference: a review may point at a product that does not
// exist.
func (s *ReviewService) CreateReviews(reqs []ReviewRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	rows := make([]models.Review, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, models.Review{
			BaseModel:   models.BaseModel{ID: utils.NewID(utils.PrefixReview)},
			Title:       req.Contents.Title,
			Description: req.Contents.Description,
			Rate:        req.Rate,
			ProductID:   req.ProductID,
		})
	}

	if err := s.db.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create reviews: %w", err)
	}
	return nil
}

func (s *ReviewService) UpdateReview(id int64, req *ReviewRequest) error {
	updates := map[string]interface{}{
		"title":       req.Contents.Title,
		"description": req.Contents.Description,
		"rate":        req.Rate,
		"product_id":  req.ProductID,
	}

	result := s.db.Model(&models.Review{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ReviewService) DeleteReviews(ids []int64) error {
	if err := s.db.Where("id IN ?", ids).Delete(&models.Review{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}
