package vocab

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *DBRepository {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec(`CREATE TABLE words (id TEXT PRIMARY KEY, word TEXT NOT NULL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO words (id, word) VALUES ('w1', 'sun'), ('w2', 'ladder')`)
	require.NoError(t, err)

	return NewDBRepository(db)
}

func TestDBRepository_Find(t *testing.T) {
	ctx := context.Background()
	repository := newTestRepository(t)

	tests := []struct {
		name string
		id   string
		want *Word
	}{
		{
			name: "existing word",
			id:   "w1",
			want: &Word{ID: "w1", Text: "sun"},
		},
		{
			name: "another existing word",
			id:   "w2",
			want: &Word{ID: "w2", Text: "ladder"},
		},
		{
			name: "absent id returns nil without error",
			id:   "w3",
			want: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repository.Find(ctx, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
