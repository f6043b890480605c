package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type movieRepo struct {
	data *Data
	log  *log.Helper
}

// NewMovieRepo creates a new movie repository
func NewMovieRepo(data *Data, logger log.Logger) biz.MovieRepo {
	return &movieRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *movieRepo) ListMovies(ctx context.Context) ([]*biz.Movie, error) {
	var rows []Movie
	if err := r.data.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	movies := make([]*biz.Movie, 0, len(rows))
	for i := range rows {
		movies = append(movies, r.modelToBiz(&rows[i]))
	}
	return movies, nil
}

func (r *movieRepo) CreateMovie(ctx context.Context, movie *biz.Movie) error {
	row := r.bizToModel(movie)
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert movie: %w", err)
	}
	movie.ID = row.ID
	return nil
}

func (r *movieRepo) DeleteMovie(ctx context.Context, id int64) error {
	if err := r.data.DB(ctx).Delete(&Movie{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	return nil
}

// Helper: Convert biz.Movie to data.Movie
func (r *movieRepo) bizToModel(m *biz.Movie) *Movie {
	return &Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		GenreID:     m.GenreID,
	}
}

// Helper: Convert data.Movie to biz.Movie
func (r *movieRepo) modelToBiz(m *Movie) *biz.Movie {
	return &biz.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		GenreID:     m.GenreID,
	}
}
