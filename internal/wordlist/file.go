package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
)

// FileSource reads a word list from a local file
type FileSource struct {
	path   string
	format Format
}

// NewFileSource creates a FileSource. FormatAuto picks the format from the file extension.
func NewFileSource(path string, format Format) *FileSource {
	return &FileSource{
		path:   path,
		format: format,
	}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load(ctx context.Context, opts ...quiz.Option) (*quiz.QuestionSet, error) {
	format := s.format
	if format == FormatAuto {
		var err error
		format, err = DetectFormat(s.path)
		if err != nil {
			return nil, err
		}
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}
	slog.Default().Debug("read a word list",
		slog.String("path", s.path),
		slog.String("format", string(format)),
		slog.Int("bytes", len(content)),
	)

	switch format {
	case FormatText:
		return quiz.Load(string(content), opts...)
	case FormatYAML:
		entries, err := parseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("parseYAML(%s) > %w", s.path, err)
		}
		return quiz.LoadEntries(entries, opts...)
	case FormatHTML:
		entries, err := parseHTML(content)
		if err != nil {
			return nil, fmt.Errorf("parseHTML(%s) > %w", s.path, err)
		}
		return quiz.LoadEntries(entries, opts...)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
