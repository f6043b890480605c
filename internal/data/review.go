package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type reviewRepo struct {
	data *Data
	log  *log.Helper
}

// NewReviewRepo creates a new review repository
func NewReviewRepo(data *Data, logger log.Logger) biz.ReviewRepo {
	return &reviewRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *reviewRepo) ListReviews(ctx context.Context) ([]*biz.Review, error) {
	var rows []Review
	if err := r.data.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	reviews := make([]*biz.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, &biz.Review{
			ID:      rows[i].ID,
			MovieID: rows[i].MovieID,
			Rating:  rows[i].Rating,
		})
	}
	return reviews, nil
}

func (r *reviewRepo) CreateReview(ctx context.Context, review *biz.Review) error {
	row := &Review{MovieID: review.MovieID, Rating: review.Rating}
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	review.ID = row.ID
	return nil
}

// UpdateReview writes the rating only.
func (r *reviewRepo) UpdateReview(ctx context.Context, review *biz.Review) error {
	err := r.data.DB(ctx).Model(&Review{}).
		Where("id = ?", review.ID).
		Update("rating", review.Rating).Error
	if err != nil {
		return fmt.Errorf("failed to update review %d: %w", review.ID, err)
	}
	return nil
}

func (r *reviewRepo) DeleteReview(ctx context.Context, id int64) error {
	if err := r.data.DB(ctx).Delete(&Review{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete review %d: %w", id, err)
	}
	return nil
}
