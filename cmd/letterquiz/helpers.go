package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/config"
	"github.com/at-ishikawa/letterquiz/internal/database"
	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/at-ishikawa/letterquiz/internal/wordlist"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// wordListSource is the word list chosen by the command line and the configuration
type wordListSource struct {
	wordlist.Source
	// name identifies the list in messages and output file names
	name  string
	close func() error
}

func (s *wordListSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openWordListSource uses the path argument when given, and the configured source otherwise
func openWordListSource(ctx context.Context, cfg *config.Config, args []string) (*wordListSource, error) {
	if len(args) > 0 {
		return &wordListSource{
			Source: wordlist.NewFileSource(args[0], wordlist.FormatAuto),
			name:   listName(args[0]),
		}, nil
	}

	switch cfg.WordList.Source {
	case config.WordListSourceDatabase:
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Connect() > %w", err)
		}
		return &wordListSource{
			Source: wordlist.NewDBSource(db, cfg.WordList.ListName),
			name:   cfg.WordList.ListName,
			close:  db.Close,
		}, nil
	default:
		format, err := wordlist.ParseFormat(cfg.WordList.Format)
		if err != nil {
			return nil, fmt.Errorf("wordlist.ParseFormat() > %w", err)
		}
		return &wordListSource{
			Source: wordlist.NewFileSource(cfg.WordList.Path, format),
			name:   listName(cfg.WordList.Path),
		}, nil
	}
}

func listName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// quizOptions combines the quiz configuration with the command line overrides
func quizOptions(cfg config.QuizConfig, seed uint64, strict bool) []quiz.Option {
	if seed == 0 {
		seed = cfg.Seed
	}
	return []quiz.Option{
		quiz.WithRandomSource(quiz.NewRandomSource(seed)),
		quiz.WithRequireMeaning(cfg.RequireMeaning || strict),
		quiz.WithAllowEmptyLetterPool(cfg.AllowEmptyLetterPool),
	}
}

func loadQuestionSet(ctx context.Context, source wordlist.Source, opts []quiz.Option) (*quiz.QuestionSet, error) {
	questions, err := source.Load(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("source.Load() > %w", err)
	}
	slog.Default().Debug("loaded a question set", slog.Int("questions", questions.Len()))
	return questions, nil
}

// invalidLines collects the invalid lines from a load error, which may join many of them
func invalidLines(err error) []*quiz.InvalidLineError {
	var result []*quiz.InvalidLineError
	var invalidLine *quiz.InvalidLineError
	if errors.As(err, &invalidLine) {
		if joined, ok := unwrapJoined(err); ok {
			for _, e := range joined {
				result = append(result, invalidLines(e)...)
			}
			return result
		}
		return []*quiz.InvalidLineError{invalidLine}
	}
	return result
}

func unwrapJoined(err error) ([]error, bool) {
	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap(), true
		}
		err = errors.Unwrap(err)
	}
	return nil, false
}

func printInvalidLines(w io.Writer, lines []*quiz.InvalidLineError) {
	_, _ = fmt.Fprintf(w, "✗ Invalid lines (%d):\n", len(lines))
	for _, line := range lines {
		_, _ = fmt.Fprintf(w, "  - %s\n", line.Error())
	}
	_, _ = fmt.Fprintln(w)
}
