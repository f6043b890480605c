package data

import (
	"context"
	"fmt"

	"moviecatalog/internal/biz"

	"github.com/go-kratos/kratos/v2/log"
)

type genreRepo struct {
	data *Data
	log  *log.Helper
}

// NewGenreRepo creates a new genre repository
func NewGenreRepo(data *Data, logger log.Logger) biz.GenreRepo {
	return &genreRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *genreRepo) ListGenres(ctx context.Context) ([]*biz.Genre, error) {
	var rows []Genre
	if err := r.data.DB(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}

	genres := make([]*biz.Genre, 0, len(rows))
	for i := range rows {
		genres = append(genres, &biz.Genre{ID: rows[i].ID, Name: rows[i].Name})
	}
	return genres, nil
}

func (r *genreRepo) CreateGenre(ctx context.Context, genre *biz.Genre) error {
	row := &Genre{Name: genre.Name}
	if err := r.data.DB(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert genre: %w", err)
	}
	genre.ID = row.ID
	return nil
}

func (r *genreRepo) DeleteGenre(ctx context.Context, id int64) error {
	if err := r.data.DB(ctx).Delete(&Genre{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete genre %d: %w", id, err)
	}
	return nil
}
