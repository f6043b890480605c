package biz

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratingsOf(items []*TitledReview) []float64 {
	out := make([]float64, 0, len(items))
	for _, item := range items {
		out = append(out, item.Review.Rating)
	}
	return out
}

func TestReviewAdd(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	m := f.movie(t, "Inception", 2010, scifi)

	f.review(t, m, 8.5)
	f.review(t, m, 8.5)

	reviews, err := f.reviews.GetRatingByMovieTitle(ctx, "inception")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)

	require.ErrorIs(t, f.reviews.Add(ctx, nil), ErrValidation)
	require.ErrorIs(t, f.reviews.Add(ctx, &Review{MovieID: m.ID, Rating: 10.5}), ErrValidation)
	require.ErrorIs(t, f.reviews.Add(ctx, &Review{MovieID: m.ID, Rating: -1}), ErrValidation)
	require.ErrorIs(t, f.reviews.Add(ctx, &Review{MovieID: m.ID, Rating: math.NaN()}), ErrValidation)
	require.ErrorIs(t, f.reviews.Add(ctx, &Review{MovieID: 999, Rating: 5}), ErrReferenceMissing)
	assert.Len(t, f.store.reviews, 2)
}

func TestReviewDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	m := f.movie(t, "Inception", 2010, scifi)
	r := f.review(t, m, 8)

	require.ErrorIs(t, f.reviews.Delete(ctx, 999), ErrNotFound)
	require.NoError(t, f.reviews.Delete(ctx, r.ID))
	assert.Empty(t, f.store.reviews)
	assert.NotContains(t, f.ranking.entries, "Inception")
}

func TestReviewUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	m := f.movie(t, "Inception", 2010, scifi)
	other := f.movie(t, "Tenet", 2020, scifi)
	r := f.review(t, m, 3)

	require.NoError(t, f.reviews.Update(ctx, &Review{ID: r.ID, MovieID: other.ID, Rating: 5}))

	reviews, err := f.reviews.GetRatingByMovieTitle(ctx, "Inception")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5.0, reviews[0].Rating)
	assert.Equal(t, m.ID, reviews[0].MovieID)
	assert.Equal(t, 5.0, f.ranking.entries["Inception"].Average)

	require.ErrorIs(t, f.reviews.Update(ctx, &Review{ID: 999, Rating: 4}), ErrNotFound)
	require.ErrorIs(t, f.reviews.Update(ctx, nil), ErrValidation)
	require.ErrorIs(t, f.reviews.Update(ctx, &Review{ID: r.ID, Rating: 11}), ErrValidation)
}

func TestGetRatingByMovieTitleUnknownMovie(t *testing.T) {
	f := newFixture()
	_, err := f.reviews.GetRatingByMovieTitle(context.Background(), "Unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetMoviesByRating(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	inception := f.movie(t, "Inception", 2010, scifi)
	tenet := f.movie(t, "Tenet", 2020, scifi)
	f.movie(t, "Dune", 2021, scifi)
	f.review(t, inception, 9)
	f.review(t, inception, 9)
	f.review(t, tenet, 7)
	f.review(t, tenet, 9)

	movies, err := f.reviews.GetMoviesByRating(ctx, 9)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, inception.ID, movies[0].ID)
	assert.Equal(t, tenet.ID, movies[1].ID)

	movies, err = f.reviews.GetMoviesByRating(ctx, 8.9)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestListReviewsOrdering(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	inception := f.movie(t, "Inception", 2010, scifi)
	tenet := f.movie(t, "Tenet", 2020, scifi)
	first := f.review(t, inception, 7)
	f.review(t, tenet, 9.5)
	second := f.review(t, tenet, 7)
	f.review(t, inception, 3)

	asc, err := f.reviews.ListReviewsAscending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7, 7, 9.5}, ratingsOf(asc))
	assert.Equal(t, first.ID, asc[1].Review.ID)
	assert.Equal(t, second.ID, asc[2].Review.ID)
	assert.Equal(t, "Inception", asc[0].MovieTitle)

	desc, err := f.reviews.ListReviewsDescending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []float64{9.5, 7, 7, 3}, ratingsOf(desc))
	assert.Equal(t, "Tenet", desc[0].MovieTitle)
	// ties keep store order in both directions
	assert.Equal(t, first.ID, desc[1].Review.ID)
	assert.Equal(t, second.ID, desc[2].Review.ID)
}

func TestListReviewsSkipsDeletedMovies(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	inception := f.movie(t, "Inception", 2010, scifi)
	tenet := f.movie(t, "Tenet", 2020, scifi)
	f.review(t, inception, 8)
	f.review(t, tenet, 6)

	deleted, err := f.movies.Delete(ctx, "Tenet")
	require.NoError(t, err)
	require.True(t, deleted)

	asc, err := f.reviews.ListReviewsAscending(ctx)
	require.NoError(t, err)
	require.Len(t, asc, 1)
	assert.Equal(t, "Inception", asc[0].MovieTitle)
}

func TestGetMoviesWithAverageRatingAbove(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	inception := f.movie(t, "Inception", 2010, scifi)
	f.review(t, inception, 8.5)
	f.review(t, inception, 7.2)

	got, err := f.reviews.GetMoviesWithAverageRatingAbove(ctx, 7.0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Inception", got[0].Title)
	assert.InDelta(t, 7.85, got[0].Average, 1e-9)
	assert.Equal(t, int32(2), got[0].Count)

	got, err = f.reviews.GetMoviesWithAverageRatingAbove(ctx, 8.0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetMoviesWithAverageRatingAboveOrderAndThreshold(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	a := f.movie(t, "A", 2000, scifi)
	b := f.movie(t, "B", 2001, scifi)
	c := f.movie(t, "C", 2002, scifi)
	f.review(t, c, 6)
	f.review(t, a, 9)
	f.review(t, b, 2)
	f.review(t, c, 8)

	got, err := f.reviews.GetMoviesWithAverageRatingAbove(ctx, 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// first-seen order: C's first review precedes A's
	assert.Equal(t, "C", got[0].Title)
	assert.Equal(t, 7.0, got[0].Average)
	assert.Equal(t, "A", got[1].Title)
}

func TestTopRated(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	a := f.movie(t, "A", 2000, scifi)
	b := f.movie(t, "B", 2001, scifi)
	c := f.movie(t, "C", 2002, scifi)
	f.review(t, a, 5)
	f.review(t, b, 9)
	f.review(t, c, 7)
	f.review(t, c, 9)

	// computed from reviews while the leaderboard is unavailable
	top, err := f.reviews.TopRated(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Title)
	assert.Equal(t, "C", top[1].Title)
	assert.Equal(t, 8.0, top[1].Average)

	f.ranking.available = true
	top, err = f.reviews.TopRated(ctx, 0)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "B", top[0].Title)
	assert.Equal(t, int32(2), f.ranking.entries["C"].Count)
}

func TestTopRatedRebuildsLeaderboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	a := f.movie(t, "A", 2000, scifi)
	b := f.movie(t, "B", 2001, scifi)

	// reviews stored before the leaderboard was reachable
	require.NoError(t, f.store.CreateReview(ctx, &Review{MovieID: a.ID, Rating: 6}))
	f.ranking.available = true

	top, err := f.reviews.TopRated(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "A", top[0].Title)
	assert.Equal(t, a.ID, top[0].MovieID)
	assert.Contains(t, f.ranking.entries, "A")

	t.Run("flushed leaderboard", func(t *testing.T) {
		f.ranking.entries = map[string]*MovieAverage{}
		top, err := f.reviews.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, a.ID, top[0].MovieID)
	})

	t.Run("writes lost during an outage", func(t *testing.T) {
		f.ranking.writeErr = errors.New("connection refused")
		f.review(t, b, 9)
		assert.NotContains(t, f.ranking.entries, "B")

		f.ranking.writeErr = nil
		top, err := f.reviews.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "B", top[0].Title)
		assert.Equal(t, b.ID, top[0].MovieID)
	})

	t.Run("entry of a deleted movie", func(t *testing.T) {
		f.ranking.entries["Ghost"] = &MovieAverage{Title: "Ghost", Average: 10, Count: 1}
		top, err := f.reviews.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "B", top[0].Title)
		assert.NotContains(t, f.ranking.entries, "Ghost")
	})
}

func TestTopRatedCarriesMovieIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	a := f.movie(t, "A", 2000, scifi)
	f.review(t, a, 7)

	computed, err := f.reviews.TopRated(ctx, 1)
	require.NoError(t, err)

	f.ranking.available = true
	ranked, err := f.reviews.TopRated(ctx, 1)
	require.NoError(t, err)

	require.Len(t, computed, 1)
	require.Len(t, ranked, 1)
	assert.Equal(t, *computed[0], *ranked[0])
}

func TestGroupAverages(t *testing.T) {
	groups := groupAverages([]*Review{
		{MovieID: 2, Rating: 4},
		{MovieID: 1, Rating: 10},
		{MovieID: 2, Rating: 5},
	})
	require.Len(t, groups, 2)
	assert.Equal(t, int64(2), groups[0].MovieID)
	assert.Equal(t, 4.5, groups[0].Average)
	assert.Equal(t, int64(1), groups[1].MovieID)
	assert.Equal(t, int32(1), groups[1].Count)

	assert.Empty(t, groupAverages(nil))
}
