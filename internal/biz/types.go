package biz

import "context"

// Movie domain model
type Movie struct {
	ID          int64
	Title       string
	ReleaseYear int
	GenreID     int64
}

// Actor domain model
type Actor struct {
	ID          int64
	FullName    string
	Nationality string
}

// Genre domain model
type Genre struct {
	ID   int64
	Name string
}

// Review domain model
type Review struct {
	ID      int64
	MovieID int64
	Rating  float64
}

// Role joins an actor to a movie under a character name
type Role struct {
	ID            int64
	MovieID       int64
	ActorID       int64
	CharacterName string
}

// TitledReview pairs a review with the title of the movie it belongs to
type TitledReview struct {
	MovieTitle string
	Review     *Review
}

// MovieAverage is the aggregated rating of one movie
type MovieAverage struct {
	MovieID int64
	Title   string
	Average float64
	Count   int32
}

// MovieRepo defines the repository interface for movies
type MovieRepo interface {
	ListMovies(ctx context.Context) ([]*Movie, error)
	CreateMovie(ctx context.Context, movie *Movie) error
	DeleteMovie(ctx context.Context, id int64) error
}

// ActorRepo defines the repository interface for actors
type ActorRepo interface {
	ListActors(ctx context.Context) ([]*Actor, error)
	CreateActor(ctx context.Context, actor *Actor) error
	UpdateActor(ctx context.Context, actor *Actor) error
	DeleteActor(ctx context.Context, id int64) error
}

// GenreRepo defines the repository interface for genres
type GenreRepo interface {
	ListGenres(ctx context.Context) ([]*Genre, error)
	CreateGenre(ctx context.Context, genre *Genre) error
	DeleteGenre(ctx context.Context, id int64) error
}

// ReviewRepo defines the repository interface for reviews
type ReviewRepo interface {
	ListReviews(ctx context.Context) ([]*Review, error)
	CreateReview(ctx context.Context, review *Review) error
	UpdateReview(ctx context.Context, review *Review) error
	DeleteReview(ctx context.Context, id int64) error
}

// RoleRepo defines the repository interface for roles
type RoleRepo interface {
	ListRoles(ctx context.Context) ([]*Role, error)
	CreateRole(ctx context.Context, role *Role) error
	DeleteRole(ctx context.Context, id int64) error
}

// RankingRepo keeps the rating leaderboard, keyed by movie title. Top and
// Rebuild return ErrRankingUnavailable when no leaderboard store is
// configured.
type RankingRepo interface {
	Refresh(ctx context.Context, avg *MovieAverage) error
	Remove(ctx context.Context, title string) error
	Rebuild(ctx context.Context, averages []*MovieAverage) error
	Top(ctx context.Context, limit int) ([]*MovieAverage, error)
}

// Transaction runs fn atomically. Repositories called with the ctx handed
// to fn take part in the same transaction, which commits when fn returns nil.
type Transaction interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
