package biz

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/go-kratos/kratos/v2/log"
)

// Accepted rating range, inclusive.
const (
	MinRating = 0.0
	MaxRating = 10.0
)

const defaultTopRatedLimit = 10

// ReviewUseCase handles reviews and the rating aggregates built from them
type ReviewUseCase struct {
	tx        Transaction
	repo      ReviewRepo
	movieRepo MovieRepo
	ranking   RankingRepo
	log       *log.Helper

	// stale is set until the leaderboard has been rebuilt from the reviews
	// and again whenever a leaderboard write fails.
	stale atomic.Bool
}

// NewReviewUseCase creates a new ReviewUseCase instance
func NewReviewUseCase(tx Transaction, repo ReviewRepo, movieRepo MovieRepo, ranking RankingRepo, logger log.Logger) *ReviewUseCase {
	uc := &ReviewUseCase{
		tx:        tx,
		repo:      repo,
		movieRepo: movieRepo,
		ranking:   ranking,
		log:       log.NewHelper(logger),
	}
	uc.stale.Store(true)
	return uc
}

// Add inserts a review. A movie may collect any number of reviews.
func (uc *ReviewUseCase) Add(ctx context.Context, review *Review) error {
	if review == nil {
		return validationError("review is required")
	}
	if err := validateRating(review.Rating); err != nil {
		return err
	}

	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		movies, err := uc.movieRepo.ListMovies(ctx)
		if err != nil {
			return fmt.Errorf("failed to list movies: %w", err)
		}
		if findFirst(movies, func(m *Movie) bool { return m.ID == review.MovieID }) == nil {
			return referenceMissingError("movie %d for review not found", review.MovieID)
		}
		if err := uc.repo.CreateReview(ctx, review); err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.refreshRanking(ctx, review.MovieID)
	return nil
}

// Delete removes the review with the given id
func (uc *ReviewUseCase) Delete(ctx context.Context, id int64) error {
	var movieID int64
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		review, err := uc.findByID(ctx, id)
		if err != nil {
			return err
		}
		movieID = review.MovieID
		if err := uc.repo.DeleteReview(ctx, id); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.refreshRanking(ctx, movieID)
	return nil
}

// Update overwrites the rating of an existing review. Other fields of
// updated are ignored.
func (uc *ReviewUseCase) Update(ctx context.Context, updated *Review) error {
	if updated == nil {
		return validationError("review is required")
	}
	if err := validateRating(updated.Rating); err != nil {
		return err
	}

	var movieID int64
	err := uc.tx.InTx(ctx, func(ctx context.Context) error {
		review, err := uc.findByID(ctx, updated.ID)
		if err != nil {
			return err
		}
		review.Rating = updated.Rating
		movieID = review.MovieID
		if err := uc.repo.UpdateReview(ctx, review); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.refreshRanking(ctx, movieID)
	return nil
}

// GetRatingByMovieTitle returns the reviews of a movie. Unlike the other
// title lookups an unknown title is an error.
func (uc *ReviewUseCase) GetRatingByMovieTitle(ctx context.Context, title string) ([]*Review, error) {
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	movie := findFirst(movies, func(m *Movie) bool { return MovieTitleKey.Lookup(m.Title, title) })
	if movie == nil {
		return nil, notFoundError("movie %q not found", title)
	}

	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return filter(reviews, func(r *Review) bool { return r.MovieID == movie.ID }), nil
}

// GetMoviesByRating returns the movies having at least one review rated
// exactly rating.
func (uc *ReviewUseCase) GetMoviesByRating(ctx context.Context, rating float64) ([]*Movie, error) {
	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	ids := make(idSet)
	for _, r := range reviews {
		if r.Rating == rating {
			ids.add(r.MovieID)
		}
	}

	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return filter(movies, func(m *Movie) bool { return ids.has(m.ID) }), nil
}

// ListReviewsAscending returns every review with its movie title, lowest
// rating first. Equal ratings keep store order.
func (uc *ReviewUseCase) ListReviewsAscending(ctx context.Context) ([]*TitledReview, error) {
	return uc.listSorted(ctx, func(a, b float64) bool { return a < b })
}

// ListReviewsDescending returns every review with its movie title, highest
// rating first. Equal ratings keep store order.
func (uc *ReviewUseCase) ListReviewsDescending(ctx context.Context) ([]*TitledReview, error) {
	return uc.listSorted(ctx, func(a, b float64) bool { return a > b })
}

// GetMoviesWithAverageRatingAbove returns the movies whose mean rating is at
// least minRating, in the order their first review appears in the store.
func (uc *ReviewUseCase) GetMoviesWithAverageRatingAbove(ctx context.Context, minRating float64) ([]*MovieAverage, error) {
	averages, err := uc.averages(ctx)
	if err != nil {
		return nil, err
	}
	return filter(averages, func(a *MovieAverage) bool { return a.Average >= minRating }), nil
}

// TopRated returns up to limit movies ordered by mean rating, highest
// first. The leaderboard is read when available, otherwise the ranking is
// computed from the reviews.
func (uc *ReviewUseCase) TopRated(ctx context.Context, limit int) ([]*MovieAverage, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}

	top, err := uc.rankedTop(ctx, limit)
	if err == nil {
		return top, nil
	}
	if !errors.Is(err, ErrRankingUnavailable) {
		uc.log.Warnf("failed to read ranking, computing from reviews: %v", err)
	}

	averages, err := uc.averages(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(averages, func(i, j int) bool { return averages[i].Average > averages[j].Average })
	if len(averages) > limit {
		averages = averages[:limit]
	}
	return averages, nil
}

// SyncRanking replaces the leaderboard with the averages computed from the
// reviews.
func (uc *ReviewUseCase) SyncRanking(ctx context.Context) error {
	uc.stale.Store(false)
	averages, err := uc.averages(ctx)
	if err == nil {
		err = uc.ranking.Rebuild(ctx, averages)
	}
	if err != nil {
		uc.stale.Store(true)
		return err
	}
	return nil
}

// rankedTop reads the leaderboard. It is rebuilt first when stale, and
// rebuilt and read again when it comes back empty or names a movie that no
// longer exists.
func (uc *ReviewUseCase) rankedTop(ctx context.Context, limit int) ([]*MovieAverage, error) {
	if uc.stale.Load() {
		if err := uc.SyncRanking(ctx); err != nil {
			return nil, err
		}
	}

	top, complete, err := uc.readRanking(ctx, limit)
	if err != nil {
		return nil, err
	}
	if complete && len(top) > 0 {
		return top, nil
	}

	if err := uc.SyncRanking(ctx); err != nil {
		return nil, err
	}
	top, _, err = uc.readRanking(ctx, limit)
	return top, err
}

// readRanking resolves leaderboard titles to movie ids. Entries without a
// movie are dropped and reported through complete.
func (uc *ReviewUseCase) readRanking(ctx context.Context, limit int) (top []*MovieAverage, complete bool, err error) {
	entries, err := uc.ranking.Top(ctx, limit)
	if err != nil {
		return nil, false, err
	}
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list movies: %w", err)
	}
	ids := make(map[string]int64, len(movies))
	for _, m := range movies {
		ids[m.Title] = m.ID
	}

	complete = true
	top = make([]*MovieAverage, 0, len(entries))
	for _, avg := range entries {
		id, ok := ids[avg.Title]
		if !ok {
			complete = false
			continue
		}
		avg.MovieID = id
		top = append(top, avg)
	}
	return top, complete, nil
}

func (uc *ReviewUseCase) listSorted(ctx context.Context, less func(a, b float64) bool) ([]*TitledReview, error) {
	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	titles, err := uc.titles(ctx)
	if err != nil {
		return nil, err
	}

	sorted := make([]*Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i].Rating, sorted[j].Rating) })

	out := make([]*TitledReview, 0, len(sorted))
	for _, r := range sorted {
		title, ok := titles[r.MovieID]
		if !ok {
			continue
		}
		out = append(out, &TitledReview{MovieTitle: title, Review: r})
	}
	return out, nil
}

// averages groups the reviews by movie in first-seen order and joins each
// group to its movie. Groups of deleted movies are dropped.
func (uc *ReviewUseCase) averages(ctx context.Context) ([]*MovieAverage, error) {
	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	titles, err := uc.titles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*MovieAverage, 0)
	for _, avg := range groupAverages(reviews) {
		title, ok := titles[avg.MovieID]
		if !ok {
			continue
		}
		avg.Title = title
		out = append(out, avg)
	}
	return out, nil
}

func (uc *ReviewUseCase) titles(ctx context.Context) (map[int64]string, error) {
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	titles := make(map[int64]string, len(movies))
	for _, m := range movies {
		titles[m.ID] = m.Title
	}
	return titles, nil
}

func (uc *ReviewUseCase) findByID(ctx context.Context, id int64) (*Review, error) {
	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	review := findFirst(reviews, func(r *Review) bool { return r.ID == id })
	if review == nil {
		return nil, notFoundError("review %d not found", id)
	}
	return review, nil
}

// refreshRanking pushes the current average of a movie to the leaderboard.
// Failures are logged only.
func (uc *ReviewUseCase) refreshRanking(ctx context.Context, movieID int64) {
	reviews, err := uc.repo.ListReviews(ctx)
	if err != nil {
		uc.log.Warnf("failed to list reviews for ranking update: %v", err)
		uc.stale.Store(true)
		return
	}
	movies, err := uc.movieRepo.ListMovies(ctx)
	if err != nil {
		uc.log.Warnf("failed to list movies for ranking update: %v", err)
		uc.stale.Store(true)
		return
	}
	movie := findFirst(movies, func(m *Movie) bool { return m.ID == movieID })
	if movie == nil {
		return
	}

	groups := groupAverages(filter(reviews, func(r *Review) bool { return r.MovieID == movieID }))
	if len(groups) == 0 {
		if err := uc.ranking.Remove(ctx, movie.Title); err != nil {
			uc.log.Warnf("failed to remove movie '%s' from ranking: %v", movie.Title, err)
			uc.stale.Store(true)
		}
		return
	}

	avg := groups[0]
	avg.Title = movie.Title
	if err := uc.ranking.Refresh(ctx, avg); err != nil {
		uc.log.Warnf("failed to update ranking for movie '%s': %v", movie.Title, err)
		uc.stale.Store(true)
	}
}

// groupAverages computes the arithmetic mean rating per movie. Groups are
// returned in the order each movie first appears in reviews.
func groupAverages(reviews []*Review) []*MovieAverage {
	var order []*MovieAverage
	sums := make(map[int64]float64)
	byMovie := make(map[int64]*MovieAverage)
	for _, r := range reviews {
		avg, ok := byMovie[r.MovieID]
		if !ok {
			avg = &MovieAverage{MovieID: r.MovieID}
			byMovie[r.MovieID] = avg
			order = append(order, avg)
		}
		avg.Count++
		sums[r.MovieID] += r.Rating
	}
	for _, avg := range order {
		avg.Average = sums[avg.MovieID] / float64(avg.Count)
	}
	return order
}

func validateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return validationError("rating %v is outside %v..%v", rating, MinRating, MaxRating)
	}
	return nil
}
