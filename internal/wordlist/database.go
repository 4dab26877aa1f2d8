package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/jmoiron/sqlx"
)

// DBSource reads a word list from the words table. It never writes.
type DBSource struct {
	db       *sqlx.DB
	listName string
}

// NewDBSource creates a DBSource for the list named listName
func NewDBSource(db *sqlx.DB, listName string) *DBSource {
	return &DBSource{
		db:       db,
		listName: listName,
	}
}

// Entries returns the words of the list in their stored order
func (s *DBSource) Entries(ctx context.Context) ([]quiz.Entry, error) {
	var entries []quiz.Entry
	query := s.db.Rebind("SELECT word, meaning FROM words WHERE list_name = ? ORDER BY position, id")
	if err := s.db.SelectContext(ctx, &entries, query, s.listName); err != nil {
		return nil, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	for i := range entries {
		entries[i].HasMeaning = strings.TrimSpace(entries[i].Meaning) != ""
	}
	slog.Default().Debug("read a word list from the database",
		slog.String("list", s.listName),
		slog.Int("entries", len(entries)),
	)
	return entries, nil
}

func (s *DBSource) Load(ctx context.Context, opts ...quiz.Option) (*quiz.QuestionSet, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return quiz.LoadEntries(entries, opts...)
}
