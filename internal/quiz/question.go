// Package quiz builds missing-letter questions and sequences them through a quiz.
package quiz

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	// Alphabet is the universe decoy letters are drawn from
	Alphabet = "abcdefghijklmnopqrstuvwxyz"
	// BlankMarker replaces the answer letter in a prompt
	BlankMarker = "[ ]"
	// OptionCount is the number of letters offered for each question
	OptionCount = 5

	decoyCount = OptionCount - 1
	delimiter  = ":"
)

var (
	ErrNoLetters      = errors.New("word has no letters to blank out")
	ErrMissingMeaning = errors.New(`no meaning after the word (missing ":")`)
)

// InvalidLineError reports an entry of a word list that cannot become a question.
// Line is 1-based.
type InvalidLineError struct {
	Line int
	Text string
	Err  error
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *InvalidLineError) Unwrap() error {
	return e.Err
}

// Entry is one word of a word list with its meaning
type Entry struct {
	Word    string `yaml:"word" db:"word" validate:"required"`
	Meaning string `yaml:"meaning" db:"meaning"`
	// HasMeaning is false when a text line has no ":" or a structured entry has no meaning
	HasMeaning bool `yaml:"-" db:"-"`
}

// SplitLine splits a "word:meaning" line at its first colon.
// A line without a colon is taken as a word with an empty meaning.
func SplitLine(line string) Entry {
	word, meaning, found := strings.Cut(line, delimiter)
	return Entry{
		Word:       strings.TrimSpace(word),
		Meaning:    strings.TrimSpace(meaning),
		HasMeaning: found,
	}
}

func (e Entry) String() string {
	if !e.HasMeaning {
		return e.Word
	}
	return e.Word + delimiter + e.Meaning
}

// Validate reports why the entry would build a degenerate question.
func (e Entry) Validate(requireMeaning bool) error {
	if requireMeaning && !e.HasMeaning {
		return ErrMissingMeaning
	}
	if len(letterPool(normalizeWord(e.Word))) == 0 {
		return ErrNoLetters
	}
	return nil
}

// Question is a fill-in-the-blank puzzle. It is not modified after it is built.
type Question struct {
	word    string
	meaning string
	prompt  string
	answer  string
	options []string
}

// Build turns a "word:meaning" line into a question.
// It never fails: a word without letters gives a question with an empty answer.
func Build(line string, rng RandomSource) Question {
	return NewQuestion(SplitLine(line), rng)
}

// NewQuestion blanks one random letter of the entry's word and draws the decoys.
func NewQuestion(entry Entry, rng RandomSource) Question {
	word := normalizeWord(entry.Word)
	meaning := strings.TrimSpace(entry.Meaning)
	answer := pickAnswer(word, rng)

	body := strings.Replace(word, answer, BlankMarker, 1)
	return Question{
		word:    word,
		meaning: meaning,
		prompt:  body + " " + delimiter + meaning,
		answer:  answer,
		options: buildOptions(answer, rng),
	}
}

// Word is the lowercased, trimmed source word
func (q Question) Word() string {
	return q.word
}

func (q Question) Meaning() string {
	return q.meaning
}

func (q Question) Prompt() string {
	return q.prompt
}

func (q Question) Answer() string {
	return q.answer
}

// Options returns a copy of the offered letters in display order
func (q Question) Options() []string {
	return slices.Clone(q.options)
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// letterPool keeps the a-z bytes of an already lowercased word
func letterPool(word string) []byte {
	pool := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		if c := word[i]; 'a' <= c && c <= 'z' {
			pool = append(pool, c)
		}
	}
	return pool
}

func pickAnswer(word string, rng RandomSource) string {
	pool := letterPool(word)
	if len(pool) == 0 {
		return ""
	}
	return string(pool[rng.IntN(len(pool))])
}

func buildOptions(answer string, rng RandomSource) []string {
	candidates := make([]string, 0, len(Alphabet))
	for _, letter := range Alphabet {
		if string(letter) != answer {
			candidates = append(candidates, string(letter))
		}
	}

	options := make([]string, 0, OptionCount)
	for range decoyCount {
		i := rng.IntN(len(candidates))
		options = append(options, candidates[i])
		candidates = slices.Delete(candidates, i, i+1)
	}
	options = append(options, answer)
	shuffle(rng, options)
	return options
}
