// Package wordlist reads static word lists and turns them into question sets.
package wordlist

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
)

//go:generate mockgen -source=source.go -destination=../mocks/wordlist/mock_source.go -package=mock_wordlist Source

// Source is a read-only word list
type Source interface {
	Load(ctx context.Context, opts ...quiz.Option) (*quiz.QuestionSet, error)
}

type Format string

const (
	FormatAuto Format = ""
	FormatText Format = "txt"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported word list format")
)

// DetectFormat chooses a format from the extension of path
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text", "":
		return FormatText, nil
	case ".yml", ".yaml":
		return FormatYAML, nil
	case ".html", ".htm", ".xhtml":
		return FormatHTML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ParseFormat validates a format name given in configuration or on the command line
func ParseFormat(name string) (Format, error) {
	switch format := Format(strings.ToLower(name)); format {
	case FormatAuto, FormatText, FormatYAML, FormatHTML:
		return format, nil
	case "yml":
		return FormatYAML, nil
	case "htm":
		return FormatHTML, nil
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}
