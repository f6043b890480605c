package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// GenreUseCase handles genres
type GenreUseCase struct {
	tx   Transaction
	repo GenreRepo
	log  *log.Helper
}

// NewGenreUseCase creates a new GenreUseCase instance
func NewGenreUseCase(tx Transaction, repo GenreRepo, logger log.Logger) *GenreUseCase {
	return &GenreUseCase{
		tx:   tx,
		repo: repo,
		log:  log.NewHelper(logger),
	}
}

// Add inserts a genre. Names are compared case-sensitively.
func (uc *GenreUseCase) Add(ctx context.Context, genre *Genre) error {
	if genre == nil {
		return validationError("genre is required")
	}
	if genre.Name == "" {
		return validationError("genre name is required")
	}

	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		genres, err := uc.repo.ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to list genres: %w", err)
		}
		if findFirst(genres, func(g *Genre) bool { return GenreNameKey.Unique(g.Name, genre.Name) }) != nil {
			return conflictError("a genre named %q already exists", genre.Name)
		}
		if err := uc.repo.CreateGenre(ctx, genre); err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}
		return nil
	})
}

// Delete removes the first genre matching name ignoring case. Movies of the
// genre keep their genre id.
func (uc *GenreUseCase) Delete(ctx context.Context, name string) error {
	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		genres, err := uc.repo.ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to list genres: %w", err)
		}
		genre := findFirst(genres, func(g *Genre) bool { return GenreNameKey.Lookup(g.Name, name) })
		if genre == nil {
			return notFoundError("genre %q not found", name)
		}
		if err := uc.repo.DeleteGenre(ctx, genre.ID); err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}
		return nil
	})
}

// GetAll returns every genre
func (uc *GenreUseCase) GetAll(ctx context.Context) ([]*Genre, error) {
	genres, err := uc.repo.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	return genres, nil
}

// GetGenreOfMovie resolves the genre a movie references. A dangling genre id
// yields ErrReferenceMissing.
func (uc *GenreUseCase) GetGenreOfMovie(ctx context.Context, movie *Movie) (*Genre, error) {
	if movie == nil {
		return nil, validationError("movie is required")
	}

	genres, err := uc.repo.ListGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	genre := findFirst(genres, func(g *Genre) bool { return g.ID == movie.GenreID })
	if genre == nil {
		return nil, referenceMissingError("genre for movie %q not found", movie.Title)
	}
	return genre, nil
}
