package biz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPolicies(t *testing.T) {
	assert.True(t, MovieTitleKey.Unique("Inception", "INCEPTION"))
	assert.True(t, ActorNameKey.Lookup("keanu reeves", "Keanu Reeves"))
	assert.True(t, CharacterNameKey.Unique("Neo", "neo"))

	assert.False(t, GenreNameKey.Unique("Drama", "drama"))
	assert.True(t, GenreNameKey.Unique("Drama", "Drama"))
	assert.True(t, GenreNameKey.Lookup("Drama", "DRAMA"))
}
