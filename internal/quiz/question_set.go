package quiz

import (
	"errors"
	"slices"
	"strings"
)

// QuestionSet walks through questions in order with a cursor that only moves forward.
// It is owned by a single host and is not safe for concurrent use.
type QuestionSet struct {
	questions []Question
	cursor    int
}

type loadOptions struct {
	rng                  RandomSource
	requireMeaning       bool
	allowEmptyLetterPool bool
}

type Option func(*loadOptions)

// WithRandomSource sets the source of letter and decoy draws
func WithRandomSource(rng RandomSource) Option {
	return func(opts *loadOptions) {
		opts.rng = rng
	}
}

// WithRequireMeaning rejects lines without a ":" delimiter
func WithRequireMeaning(require bool) Option {
	return func(opts *loadOptions) {
		opts.requireMeaning = require
	}
}

// WithAllowEmptyLetterPool keeps words without letters as questions with an empty answer
// instead of rejecting them.
func WithAllowEmptyLetterPool(allow bool) Option {
	return func(opts *loadOptions) {
		opts.allowEmptyLetterPool = allow
	}
}

// NewQuestionSet wraps already built questions
func NewQuestionSet(questions []Question) *QuestionSet {
	return &QuestionSet{
		questions: questions,
	}
}

// Load builds one question per non-empty line of text, keeping the order of the lines.
// Every rejected line is reported as an *InvalidLineError.
func Load(text string, opts ...Option) (*QuestionSet, error) {
	var entries []Entry
	var lineNumbers []int
	lineNumber := 0
	for line := range strings.Lines(text) {
		lineNumber++
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, SplitLine(line))
		lineNumbers = append(lineNumbers, lineNumber)
	}
	return load(entries, lineNumbers, opts)
}

// LoadEntries builds one question per entry. Errors number entries from 1.
func LoadEntries(entries []Entry, opts ...Option) (*QuestionSet, error) {
	lineNumbers := make([]int, len(entries))
	for i := range entries {
		lineNumbers[i] = i + 1
	}
	return load(entries, lineNumbers, opts)
}

func load(entries []Entry, lineNumbers []int, opts []Option) (*QuestionSet, error) {
	options := loadOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.rng == nil {
		options.rng = NewRandomSource(0)
	}

	var errs []error
	questions := make([]Question, 0, len(entries))
	for i, entry := range entries {
		if err := entry.Validate(options.requireMeaning); err != nil {
			if !errors.Is(err, ErrNoLetters) || !options.allowEmptyLetterPool {
				errs = append(errs, &InvalidLineError{
					Line: lineNumbers[i],
					Text: entry.String(),
					Err:  err,
				})
				continue
			}
		}
		questions = append(questions, NewQuestion(entry, options.rng))
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return NewQuestionSet(questions), nil
}

// Current returns the question under the cursor, or false once the quiz is complete.
func (s *QuestionSet) Current() (Question, bool) {
	if s.cursor >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// Check reports whether candidate is exactly the current answer
func (s *QuestionSet) Check(candidate string) bool {
	question, ok := s.Current()
	if !ok {
		return false
	}
	return candidate == question.answer
}

// Advance moves the cursor forward without any bound check.
// Call Current afterwards to detect completion.
func (s *QuestionSet) Advance() {
	s.cursor++
}

func (s *QuestionSet) Len() int {
	return len(s.questions)
}

func (s *QuestionSet) Cursor() int {
	return s.cursor
}

// Done reports whether every question has been passed
func (s *QuestionSet) Done() bool {
	return s.cursor >= len(s.questions)
}

// Questions returns a copy of all questions in order
func (s *QuestionSet) Questions() []Question {
	return slices.Clone(s.questions)
}
