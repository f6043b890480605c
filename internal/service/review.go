package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"
)

func (s *CatalogService) AddReview(ctx context.Context, req *v1.AddReviewRequest) (*v1.Review, error) {
	review := &biz.Review{MovieID: req.MovieID, Rating: req.Rating}
	if err := s.reviewUC.Add(ctx, review); err != nil {
		return nil, err
	}
	return reviewToProto(review), nil
}

// ListReviews returns every review with its movie title ordered by rating
func (s *CatalogService) ListReviews(ctx context.Context, req *v1.ListReviewsRequest) (*v1.ListTitledReviewsReply, error) {
	var (
		reviews []*biz.TitledReview
		err     error
	)
	switch req.Order {
	case "", "asc":
		reviews, err = s.reviewUC.ListReviewsAscending(ctx)
	case "desc":
		reviews, err = s.reviewUC.ListReviewsDescending(ctx)
	default:
		return nil, errors.BadRequest("INVALID_ARGUMENT", "order must be asc or desc")
	}
	if err != nil {
		return nil, err
	}

	reply := &v1.ListTitledReviewsReply{Items: make([]*v1.TitledReview, 0, len(reviews))}
	for _, r := range reviews {
		reply.Items = append(reply.Items, &v1.TitledReview{
			MovieTitle: r.MovieTitle,
			Review:     reviewToProto(r.Review),
		})
	}
	return reply, nil
}

func (s *CatalogService) UpdateReview(ctx context.Context, req *v1.UpdateReviewRequest) (*v1.Empty, error) {
	if err := s.reviewUC.Update(ctx, &biz.Review{ID: req.ID, Rating: req.Rating}); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *CatalogService) DeleteReview(ctx context.Context, req *v1.ReviewIDRequest) (*v1.Empty, error) {
	if err := s.reviewUC.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	return &v1.Empty{}, nil
}

func (s *CatalogService) ListMoviesByRating(ctx context.Context, req *v1.ListMoviesByRatingRequest) (*v1.ListMoviesReply, error) {
	movies, err := s.reviewUC.GetMoviesByRating(ctx, req.Rating)
	if err != nil {
		return nil, err
	}
	return moviesToProto(movies), nil
}

func (s *CatalogService) ListAverageRatings(ctx context.Context, req *v1.ListAverageRatingsRequest) (*v1.ListAveragesReply, error) {
	averages, err := s.reviewUC.GetMoviesWithAverageRatingAbove(ctx, req.Min)
	if err != nil {
		return nil, err
	}
	return averagesToProto(averages), nil
}

func (s *CatalogService) TopRated(ctx context.Context, req *v1.TopRatedRequest) (*v1.ListAveragesReply, error) {
	averages, err := s.reviewUC.TopRated(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	return averagesToProto(averages), nil
}
