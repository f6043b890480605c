// Package v1 is the JSON contract of the catalog HTTP API.
package v1

type Movie struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
	GenreID     int64  `json:"genre_id"`
}

type Actor struct {
	ID          int64  `json:"id"`
	FullName    string `json:"full_name"`
	Nationality string `json:"nationality"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID      int64   `json:"id"`
	MovieID int64   `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

type Role struct {
	ID            int64  `json:"id"`
	MovieID       int64  `json:"movie_id"`
	ActorID       int64  `json:"actor_id"`
	CharacterName string `json:"character_name"`
}

type TitledReview struct {
	MovieTitle string  `json:"movie_title"`
	Review     *Review `json:"review"`
}

type MovieAverage struct {
	MovieID int64   `json:"movie_id,omitempty"`
	Title   string  `json:"title"`
	Average float64 `json:"average"`
	Count   int32   `json:"count"`
}

type Empty struct{}

type DeleteReply struct {
	Deleted bool `json:"deleted"`
}

type HealthCheckRequest struct{}

type HealthCheckReply struct {
	Status string `json:"status"`
}

type AddMovieRequest struct {
	Title       string `json:"title"`
	ReleaseYear int    `json:"release_year"`
	GenreID     int64  `json:"genre_id"`
}

// ListMoviesRequest filters by at most one of title, year and genre id.
// No filter lists every movie.
type ListMoviesRequest struct {
	Title   *string
	Year    *int
	GenreID *int64
}

type ListMoviesReply struct {
	Items []*Movie `json:"items"`
}

type MovieTitleRequest struct {
	Title string `json:"title"`
}

type AddActorRequest struct {
	FullName    string `json:"full_name"`
	Nationality string `json:"nationality"`
}

type UpdateActorRequest struct {
	Name        string `json:"-"`
	FullName    string `json:"full_name"`
	Nationality string `json:"nationality"`
}

type ActorNameRequest struct {
	Name string `json:"name"`
}

type ListActorsReply struct {
	Items []*Actor `json:"items"`
}

type AddGenreRequest struct {
	Name string `json:"name"`
}

type GenreNameRequest struct {
	Name string `json:"name"`
}

type ListGenresRequest struct{}

type ListGenresReply struct {
	Items []*Genre `json:"items"`
}

type AddRoleRequest struct {
	MovieID       int64  `json:"movie_id"`
	ActorID       int64  `json:"actor_id"`
	CharacterName string `json:"character_name"`
}

type CharacterRequest struct {
	Character string `json:"character"`
}

type ListRolesReply struct {
	Items []*Role `json:"items"`
}

type AddReviewRequest struct {
	MovieID int64   `json:"movie_id"`
	Rating  float64 `json:"rating"`
}

type UpdateReviewRequest struct {
	ID     int64   `json:"-"`
	Rating float64 `json:"rating"`
}

type ReviewIDRequest struct {
	ID int64 `json:"id"`
}

// ListReviewsRequest orders by rating, "asc" (default) or "desc".
type ListReviewsRequest struct {
	Order string
}

type ListTitledReviewsReply struct {
	Items []*TitledReview `json:"items"`
}

type ListReviewsReply struct {
	Items []*Review `json:"items"`
}

type ListMoviesByRatingRequest struct {
	Rating float64
}

type ListAverageRatingsRequest struct {
	Min float64
}

type TopRatedRequest struct {
	Limit int
}

type ListAveragesReply struct {
	Items []*MovieAverage `json:"items"`
}
