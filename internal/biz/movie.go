package biz

import (
	"context"
	"fmt"

	"github.com/go-kratos/kratos/v2/log"
)

// MovieUseCase handles movie-related business logic
type MovieUseCase struct {
	tx        Transaction
	repo      MovieRepo
	genreRepo GenreRepo
	ranking   RankingRepo
	log       *log.Helper
}

// NewMovieUseCase creates a new MovieUseCase instance
func NewMovieUseCase(tx Transaction, repo MovieRepo, genreRepo GenreRepo, ranking RankingRepo, logger log.Logger) *MovieUseCase {
	return &MovieUseCase{
		tx:        tx,
		repo:      repo,
		genreRepo: genreRepo,
		ranking:   ranking,
		log:       log.NewHelper(logger),
	}
}

// Add inserts a movie. The title must be unique ignoring case and the genre
// must exist.
func (uc *MovieUseCase) Add(ctx context.Context, movie *Movie) error {
	if movie == nil {
		return validationError("movie is required")
	}
	if movie.Title == "" {
		return validationError("movie title is required")
	}

	return uc.tx.InTx(ctx, func(ctx context.Context) error {
		movies, err := uc.repo.ListMovies(ctx)
		if err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}
		if findFirst(movies, func(m *Movie) bool { return MovieTitleKey.Unique(m.Title, movie.Title) }) != nil {
			return conflictError("a movie titled %q already exists", movie.Title)
		}

		genres, err := uc.genreRepo.ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to list genres: %w", err)
		}
		if findFirst(genres, func(g *Genre) bool { return g.ID == movie.GenreID }) == nil {
			return referenceMissingError("genre %d for movie %q not found", movie.GenreID, movie.Title)
		}

		if err := uc.repo.CreateMovie(ctx, movie); err != nil {
			return fmt.Errorf("failed to create movie: %w", err)
		}
		return nil
	})
}

// Delete removes the movie with the given title and reports whether one was
// found. Reviews and roles of the movie are left in place.
func (uc *MovieUseCase) Delete(ctx context.Context, title string) (bool, error) {
	var deleted *Movie
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		movies, err := uc.repo.ListMovies(ctx)
		if err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}
		deleted = findFirst(movies, func(m *Movie) bool { return MovieTitleKey.Lookup(m.Title, title) })
		if deleted == nil {
			return nil
		}
		if err := uc.repo.DeleteMovie(ctx, deleted.ID); err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}
		return nil
	})
	if err != nil || deleted == nil {
		return false, err
	}

	if err := uc.ranking.Remove(ctx, deleted.Title); err != nil {
		uc.log.Warnf("failed to remove movie '%s' from ranking: %v", deleted.Title, err)
	}
	return true, nil
}

// GetByTitle returns the movies matching title ignoring case
func (uc *MovieUseCase) GetByTitle(ctx context.Context, title string) ([]*Movie, error) {
	return uc.list(ctx, func(m *Movie) bool { return MovieTitleKey.Lookup(m.Title, title) })
}

// GetByReleaseYear returns the movies released in year
func (uc *MovieUseCase) GetByReleaseYear(ctx context.Context, year int) ([]*Movie, error) {
	return uc.list(ctx, func(m *Movie) bool { return m.ReleaseYear == year })
}

// GetByGenre returns the movies referencing genreID
func (uc *MovieUseCase) GetByGenre(ctx context.Context, genreID int64) ([]*Movie, error) {
	return uc.list(ctx, func(m *Movie) bool { return m.GenreID == genreID })
}

// GetAll returns every movie
func (uc *MovieUseCase) GetAll(ctx context.Context) ([]*Movie, error) {
	return uc.list(ctx, func(*Movie) bool { return true })
}

func (uc *MovieUseCase) list(ctx context.Context, keep func(*Movie) bool) ([]*Movie, error) {
	movies, err := uc.repo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return filter(movies, keep), nil
}
