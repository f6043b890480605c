package biz

import (
	"context"
	"sort"
	"testing"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory gateway implementing every repo. Lists return
// copies so callers cannot change stored rows without an explicit write.
type memStore struct {
	nextID  int64
	listErr error

	movies  []*Movie
	actors  []*Actor
	genres  []*Genre
	reviews []*Review
	roles   []*Role
}

func (s *memStore) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func cloneAll[T any](items []*T) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		c := *item
		out = append(out, &c)
	}
	return out
}

func removeWhere[T any](items []*T, match func(*T) bool) []*T {
	out := items[:0]
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}

func (s *memStore) ListMovies(context.Context) ([]*Movie, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return cloneAll(s.movies), nil
}

func (s *memStore) CreateMovie(_ context.Context, m *Movie) error {
	m.ID = s.id()
	c := *m
	s.movies = append(s.movies, &c)
	return nil
}

func (s *memStore) DeleteMovie(_ context.Context, id int64) error {
	s.movies = removeWhere(s.movies, func(m *Movie) bool { return m.ID == id })
	return nil
}

func (s *memStore) ListActors(context.Context) ([]*Actor, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return cloneAll(s.actors), nil
}

func (s *memStore) CreateActor(_ context.Context, a *Actor) error {
	a.ID = s.id()
	c := *a
	s.actors = append(s.actors, &c)
	return nil
}

func (s *memStore) UpdateActor(_ context.Context, a *Actor) error {
	for i, existing := range s.actors {
		if existing.ID == a.ID {
			c := *a
			s.actors[i] = &c
		}
	}
	return nil
}

func (s *memStore) DeleteActor(_ context.Context, id int64) error {
	s.actors = removeWhere(s.actors, func(a *Actor) bool { return a.ID == id })
	return nil
}

func (s *memStore) ListGenres(context.Context) ([]*Genre, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return cloneAll(s.genres), nil
}

func (s *memStore) CreateGenre(_ context.Context, g *Genre) error {
	g.ID = s.id()
	c := *g
	s.genres = append(s.genres, &c)
	return nil
}

func (s *memStore) DeleteGenre(_ context.Context, id int64) error {
	s.genres = removeWhere(s.genres, func(g *Genre) bool { return g.ID == id })
	return nil
}

func (s *memStore) ListReviews(context.Context) ([]*Review, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return cloneAll(s.reviews), nil
}

func (s *memStore) CreateReview(_ context.Context, r *Review) error {
	r.ID = s.id()
	c := *r
	s.reviews = append(s.reviews, &c)
	return nil
}

func (s *memStore) UpdateReview(_ context.Context, r *Review) error {
	for i, existing := range s.reviews {
		if existing.ID == r.ID {
			c := *r
			s.reviews[i] = &c
		}
	}
	return nil
}

func (s *memStore) DeleteReview(_ context.Context, id int64) error {
	s.reviews = removeWhere(s.reviews, func(r *Review) bool { return r.ID == id })
	return nil
}

func (s *memStore) ListRoles(context.Context) ([]*Role, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return cloneAll(s.roles), nil
}

func (s *memStore) CreateRole(_ context.Context, r *Role) error {
	r.ID = s.id()
	c := *r
	s.roles = append(s.roles, &c)
	return nil
}

func (s *memStore) DeleteRole(_ context.Context, id int64) error {
	s.roles = removeWhere(s.roles, func(r *Role) bool { return r.ID == id })
	return nil
}

// memRanking records leaderboard writes. Top and Rebuild fail with
// ErrRankingUnavailable unless available is set. writeErr fails every write.
type memRanking struct {
	available bool
	writeErr  error
	entries   map[string]*MovieAverage
}

func (r *memRanking) Refresh(_ context.Context, avg *MovieAverage) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	c := *avg
	r.entries[avg.Title] = &c
	return nil
}

func (r *memRanking) Remove(_ context.Context, title string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	delete(r.entries, title)
	return nil
}

func (r *memRanking) Rebuild(_ context.Context, averages []*MovieAverage) error {
	if !r.available {
		return ErrRankingUnavailable
	}
	if r.writeErr != nil {
		return r.writeErr
	}
	r.entries = make(map[string]*MovieAverage, len(averages))
	for _, avg := range averages {
		c := *avg
		c.MovieID = 0
		r.entries[avg.Title] = &c
	}
	return nil
}

func (r *memRanking) Top(_ context.Context, limit int) ([]*MovieAverage, error) {
	if !r.available {
		return nil, ErrRankingUnavailable
	}
	out := make([]*MovieAverage, 0, len(r.entries))
	for _, e := range r.entries {
		c := *e
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Average > out[j].Average })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fixture struct {
	store   *memStore
	ranking *memRanking

	movies  *MovieUseCase
	actors  *ActorUseCase
	genres  *GenreUseCase
	roles   *RoleUseCase
	reviews *ReviewUseCase
}

func newFixture() *fixture {
	s := &memStore{}
	r := &memRanking{entries: map[string]*MovieAverage{}}
	logger := log.DefaultLogger
	return &fixture{
		store:   s,
		ranking: r,
		movies:  NewMovieUseCase(s, s, s, r, logger),
		actors:  NewActorUseCase(s, s, s, s, logger),
		genres:  NewGenreUseCase(s, s, logger),
		roles:   NewRoleUseCase(s, s, s, s, logger),
		reviews: NewReviewUseCase(s, s, s, r, logger),
	}
}

func (f *fixture) genre(t *testing.T, name string) *Genre {
	t.Helper()
	g := &Genre{Name: name}
	require.NoError(t, f.genres.Add(context.Background(), g))
	return g
}

func (f *fixture) movie(t *testing.T, title string, year int, genre *Genre) *Movie {
	t.Helper()
	m := &Movie{Title: title, ReleaseYear: year, GenreID: genre.ID}
	require.NoError(t, f.movies.Add(context.Background(), m))
	return m
}

func (f *fixture) actor(t *testing.T, name, nationality string) *Actor {
	t.Helper()
	a := &Actor{FullName: name, Nationality: nationality}
	require.NoError(t, f.actors.Add(context.Background(), a))
	return a
}

func (f *fixture) role(t *testing.T, movie *Movie, actor *Actor, character string) *Role {
	t.Helper()
	r := &Role{MovieID: movie.ID, ActorID: actor.ID, CharacterName: character}
	require.NoError(t, f.roles.Add(context.Background(), r))
	return r
}

func (f *fixture) review(t *testing.T, movie *Movie, rating float64) *Review {
	t.Helper()
	r := &Review{MovieID: movie.ID, Rating: rating}
	require.NoError(t, f.reviews.Add(context.Background(), r))
	return r
}
