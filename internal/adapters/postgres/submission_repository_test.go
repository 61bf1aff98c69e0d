package postgres_adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mnasyf821-dotcom/palcars/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecer struct {
	queries []string
	args    [][]any
	err     error
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, sql)
	f.args = append(f.args, arguments)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestSubmissionRepository_Save(t *testing.T) {
	db := &fakeExecer{}
	repo, err := NewSubmissionRepository(db)
	require.NoError(t, err)

	sub := &domain.ListingSubmission{
		ID:          uuid.New(),
		Brand:       "Skoda",
		Model:       "Octavia",
		Year:        2018,
		Price:       61000,
		SellerPhone: "0599000000",
		CreatedAt:   time.Now().UTC(),
	}
	require.NoError(t, repo.Save(context.Background(), sub))

	require.Len(t, db.args, 1)
	assert.Contains(t, db.queries[0], "INSERT INTO listing_submissions")
	assert.Len(t, db.args[0], 17)
	assert.Equal(t, sub.ID, db.args[0][0])
	assert.Equal(t, []string{}, db.args[0][15])
}

func TestSubmissionRepository_SaveError(t *testing.T) {
	db := &fakeExecer{err: errors.New("duplicate key")}
	repo, err := NewSubmissionRepository(db)
	require.NoError(t, err)

	err = repo.Save(context.Background(), &domain.ListingSubmission{ID: uuid.New()})
	assert.ErrorContains(t, err, "duplicate key")
}

func TestSubmissionRepository_EnsureSchema(t *testing.T) {
	db := &fakeExecer{}
	repo, err := NewSubmissionRepository(db)
	require.NoError(t, err)

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.Contains(t, db.queries[0], "CREATE TABLE IF NOT EXISTS listing_submissions")
}

func TestNewSubmissionRepository_Nil(t *testing.T) {
	_, err := NewSubmissionRepository(nil)
	assert.Error(t, err)
}
