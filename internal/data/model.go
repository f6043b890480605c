package data

import "time"

// Genre represents the genres table
type Genre struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"not null;size:100;index:idx_genres_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Genre) TableName() string {
	return "genres"
}

// Movie represents the movies table. GenreID is a plain column: deleting a
// genre leaves it dangling.
type Movie struct {
	ID          int64     `gorm:"primaryKey"`
	Title       string    `gorm:"not null;size:255;index:idx_movies_title"`
	ReleaseYear int       `gorm:"not null;index:idx_movies_release_year"`
	GenreID     int64     `gorm:"not null;index:idx_movies_genre_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Movie) TableName() string {
	return "movies"
}

// Actor represents the actors table
type Actor struct {
	ID          int64     `gorm:"primaryKey"`
	FullName    string    `gorm:"not null;size:255;index:idx_actors_full_name"`
	Nationality string    `gorm:"size:100"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Actor) TableName() string {
	return "actors"
}

// Review represents the reviews table
type Review struct {
	ID        int64     `gorm:"primaryKey"`
	MovieID   int64     `gorm:"not null;index:idx_reviews_movie_id"`
	Rating    float64   `gorm:"not null;check:rating >= 0 AND rating <= 10"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}

// Role represents the roles table joining movies and actors
type Role struct {
	ID            int64     `gorm:"primaryKey"`
	MovieID       int64     `gorm:"not null;index:idx_roles_movie_id"`
	ActorID       int64     `gorm:"not null;index:idx_roles_actor_id"`
	CharacterName string    `gorm:"not null;size:255;index:idx_roles_character_name"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides the table name
func (Role) TableName() string {
	return "roles"
}
