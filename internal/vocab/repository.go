// Package vocab provides lookup of vocabulary items by id from the
// read-only on-device dictionary database.
package vocab

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocab/mock_repository.go -package=mock_vocab Repository

// Word is one vocabulary item.
type Word struct {
	ID   string `db:"id"`
	Text string `db:"word"`
}

// Repository looks up vocabulary items.
type Repository interface {
	// Find returns the word with the given id, or (nil, nil) when absent.
	Find(ctx context.Context, id string) (*Word, error)
}

// DBRepository implements Repository over the bundled SQLite vocabulary
// database.
type DBRepository struct {
	db *sqlx.DB
}

// Open opens the vocabulary database at path.
func Open(path string) (*DBRepository, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}
	return &DBRepository{db: db}, nil
}

// NewDBRepository wraps an already opened database.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the word with the given id, or (nil, nil) if no such word
// exists.
func (r *DBRepository) Find(ctx context.Context, id string) (*Word, error) {
	var word Word
	err := r.db.GetContext(ctx, &word, "SELECT id, word FROM words WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(words) > %w", err)
	}
	return &word, nil
}

// Close closes the underlying database.
func (r *DBRepository) Close() error {
	return r.db.Close()
}
