package mongostore

import (
	"errors"
	"testing"

	"animehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "op"))
	assert.ErrorIs(t, mapError(mongo.ErrNoDocuments, "find show"), domain.ErrNotFound)

	dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	assert.ErrorIs(t, mapError(dup, "create review"), domain.ErrAlreadyExists)

	other := errors.New("socket closed")
	got := mapError(other, "list reviews")
	assert.ErrorIs(t, got, other)
	assert.False(t, errors.Is(got, domain.ErrAlreadyExists))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, uniq([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, uniq(nil))
}

func TestEnsureID(t *testing.T) {
	id := ""
	ensureID(&id)
	assert.NotEmpty(t, id)

	fixed := "S1"
	ensureID(&fixed)
	assert.Equal(t, "S1", fixed)
}
