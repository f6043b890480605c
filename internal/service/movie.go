package service

import (
	"context"

	"github.com/go-kratos/kratos/v2/errors"

	v1 "moviecatalog/api/catalog/v1"
	"moviecatalog/internal/biz"
)

// AddMovie implements movie creation
func (s *CatalogService) AddMovie(ctx context.Context, req *v1.AddMovieRequest) (*v1.Movie, error) {
	movie := &biz.Movie{
		Title:       req.Title,
		ReleaseYear: req.ReleaseYear,
		GenreID:     req.GenreID,
	}
	if err := s.movieUC.Add(ctx, movie); err != nil {
		return nil, err
	}
	return movieToProto(movie), nil
}

// DeleteMovie reports whether a movie was removed; a missing title is not
// an error.
func (s *CatalogService) DeleteMovie(ctx context.Context, req *v1.MovieTitleRequest) (*v1.DeleteReply, error) {
	deleted, err := s.movieUC.Delete(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	return &v1.DeleteReply{Deleted: deleted}, nil
}

// ListMovies lists every movie, or the movies matching a single filter
func (s *CatalogService) ListMovies(ctx context.Context, req *v1.ListMoviesRequest) (*v1.ListMoviesReply, error) {
	if countSet(req.Title != nil, req.Year != nil, req.GenreID != nil) > 1 {
		return nil, errors.BadRequest("INVALID_ARGUMENT", "at most one of title, year and genre_id may be given")
	}

	var (
		movies []*biz.Movie
		err    error
	)
	switch {
	case req.Title != nil:
		movies, err = s.movieUC.GetByTitle(ctx, *req.Title)
	case req.Year != nil:
		movies, err = s.movieUC.GetByReleaseYear(ctx, *req.Year)
	case req.GenreID != nil:
		movies, err = s.movieUC.GetByGenre(ctx, *req.GenreID)
	default:
		movies, err = s.movieUC.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return moviesToProto(movies), nil
}

// GetMovieGenre resolves the movie by title, then its genre
func (s *CatalogService) GetMovieGenre(ctx context.Context, req *v1.MovieTitleRequest) (*v1.Genre, error) {
	movies, err := s.movieUC.GetByTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, errors.NotFound(biz.ReasonNotFound, "movie not found")
	}

	genre, err := s.genreUC.GetGenreOfMovie(ctx, movies[0])
	if err != nil {
		return nil, err
	}
	return genreToProto(genre), nil
}

// ListActorsByMovie implements the cast lookup of a movie
func (s *CatalogService) ListActorsByMovie(ctx context.Context, req *v1.MovieTitleRequest) (*v1.ListActorsReply, error) {
	actors, err := s.actorUC.GetActorsByMovieTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	return actorsToProto(actors), nil
}

// ListRolesByMovie implements the role lookup of a movie
func (s *CatalogService) ListRolesByMovie(ctx context.Context, req *v1.MovieTitleRequest) (*v1.ListRolesReply, error) {
	roles, err := s.roleUC.GetRolesByMovieTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	return rolesToProto(roles), nil
}

// ListMovieReviews returns the reviews of a movie, 404 for an unknown title
func (s *CatalogService) ListMovieReviews(ctx context.Context, req *v1.MovieTitleRequest) (*v1.ListReviewsReply, error) {
	reviews, err := s.reviewUC.GetRatingByMovieTitle(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	reply := &v1.ListReviewsReply{Items: make([]*v1.Review, 0, len(reviews))}
	for _, r := range reviews {
		reply.Items = append(reply.Items, reviewToProto(r))
	}
	return reply, nil
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}
