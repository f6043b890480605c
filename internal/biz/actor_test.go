package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorAdd(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.actor(t, "Keanu Reeves", "Canadian")

	all, err := f.actors.GetAllActors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].ID)

	require.ErrorIs(t, f.actors.Add(ctx, nil), ErrValidation)
	require.ErrorIs(t, f.actors.Add(ctx, &Actor{}), ErrValidation)
	require.ErrorIs(t, f.actors.Add(ctx, &Actor{FullName: "keanu REEVES"}), ErrConflict)

	all, err = f.actors.GetAllActors(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestActorDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.actor(t, "Keanu Reeves", "Canadian")

	require.ErrorIs(t, f.actors.Delete(ctx, "Nobody"), ErrNotFound)
	require.NoError(t, f.actors.Delete(ctx, "keanu reeves"))

	all, err := f.actors.GetAllActors(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestActorUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.actor(t, "Keanu Reeves", "Canadian")
	f.actor(t, "Carrie-Anne Moss", "Canadian")

	require.NoError(t, f.actors.Update(ctx, "KEANU REEVES", &Actor{ID: 999, FullName: "Keanu Charles Reeves", Nationality: "Lebanese-Canadian"}))

	all, err := f.actors.GetAllActors(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, "Keanu Charles Reeves", all[0].FullName)
	assert.Equal(t, "Lebanese-Canadian", all[0].Nationality)

	require.ErrorIs(t, f.actors.Update(ctx, "Keanu Reeves", &Actor{FullName: "X"}), ErrNotFound)
	require.ErrorIs(t, f.actors.Update(ctx, "Keanu Charles Reeves", nil), ErrValidation)
	require.ErrorIs(t, f.actors.Update(ctx, "Keanu Charles Reeves", &Actor{FullName: "carrie-anne moss"}), ErrConflict)

	// renaming to the same name with different case is not a clash
	require.NoError(t, f.actors.Update(ctx, "Keanu Charles Reeves", &Actor{FullName: "KEANU CHARLES REEVES"}))
}

func TestActorRelationships(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	scifi := f.genre(t, "Sci-Fi")
	matrix := f.movie(t, "The Matrix", 1999, scifi)
	johnWick := f.movie(t, "John Wick", 2014, scifi)
	keanu := f.actor(t, "Keanu Reeves", "Canadian")
	carrie := f.actor(t, "Carrie-Anne Moss", "Canadian")
	f.actor(t, "Idle Actor", "None")

	f.role(t, matrix, keanu, "Neo")
	f.role(t, matrix, carrie, "Trinity")
	f.role(t, johnWick, keanu, "John Wick")
	f.role(t, matrix, keanu, "The One")

	actors, err := f.actors.GetActorsByMovieTitle(ctx, "the matrix")
	require.NoError(t, err)
	require.Len(t, actors, 2)
	assert.Equal(t, keanu.ID, actors[0].ID)
	assert.Equal(t, carrie.ID, actors[1].ID)

	actors, err = f.actors.GetActorsByMovieTitle(ctx, "Unknown")
	require.NoError(t, err)
	assert.NotNil(t, actors)
	assert.Empty(t, actors)

	actors, err = f.actors.GetActorsByCharacterName(ctx, "TRINITY")
	require.NoError(t, err)
	require.Len(t, actors, 1)
	assert.Equal(t, carrie.ID, actors[0].ID)

	actors, err = f.actors.GetActorsByCharacterName(ctx, "Morpheus")
	require.NoError(t, err)
	assert.Empty(t, actors)

	movies, err := f.actors.GetMoviesByActor(ctx, "keanu reeves")
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, matrix.ID, movies[0].ID)
	assert.Equal(t, johnWick.ID, movies[1].ID)

	movies, err = f.actors.GetMoviesByActor(ctx, "Nobody")
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}
