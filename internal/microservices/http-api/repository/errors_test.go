package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"animehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"gorm foreign key", gorm.ErrForeignKeyViolated, domain.ErrNotFound},
		{"gorm check", gorm.ErrCheckConstraintViolated, domain.ErrValidation},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_season_ratings_key"}, domain.ErrAlreadyExists},
		{"wrapped unique violation", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"}), domain.ErrAlreadyExists},
		{"foreign key", &pgconn.PgError{Code: "23503"}, domain.ErrNotFound},
		{"check", &pgconn.PgError{Code: "23514"}, domain.ErrValidation},
		{"deadline", context.DeadlineExceeded, context.DeadlineExceeded},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapError(tt.in, "op")
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestMapError_Nil(t *testing.T) {
	t.Parallel()
	assert.NoError(t, mapError(nil, "op"))
}

func TestMapError_UnknownPassesThrough(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got := mapError(boom, "list reviews")
	assert.ErrorIs(t, got, boom)
	assert.False(t, errors.Is(got, domain.ErrNotFound))
	assert.Equal(t, "list reviews: boom", got.Error())
}
