package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/at-ishikawa/letterquiz/internal/statistics"
)

// AdvancePolicy decides when the quiz moves on to the next question
type AdvancePolicy string

const (
	// AdvanceOnCorrect keeps asking the same question until it is answered correctly
	AdvanceOnCorrect AdvancePolicy = "correct"
	// AdvanceAlways moves on after every answer
	AdvanceAlways AdvancePolicy = "always"
)

// LetterQuizCLI asks the missing letter of each question of a question set
type LetterQuizCLI struct {
	*InteractiveQuizCLI
	questions *quiz.QuestionSet
	policy    AdvancePolicy
	recorder  *statistics.Recorder
}

// NewLetterQuizCLI creates a missing letter quiz session over questions
func NewLetterQuizCLI(
	questions *quiz.QuestionSet,
	policy AdvancePolicy,
	stdin io.Reader,
	stdout io.Writer,
) *LetterQuizCLI {
	return &LetterQuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		questions:          questions,
		policy:             policy,
		recorder:           statistics.NewRecorder(),
	}
}

// GetQuestionCount returns the number of questions in the session
func (r *LetterQuizCLI) GetQuestionCount() int {
	return r.questions.Len()
}

// Statistics returns the statistics of the answers given so far
func (r *LetterQuizCLI) Statistics() statistics.SessionStatistics {
	return r.recorder.Statistics()
}

func (r *LetterQuizCLI) Session(ctx context.Context) error {
	w := r.stdoutWriter
	question, ok := r.questions.Current()
	if !ok {
		_, _ = fmt.Fprintln(w, "No more questions!")
		_, _ = fmt.Fprintln(w)
		WriteSessionReport(w, r.Statistics())
		return errEnd
	}

	// Display the question
	_, _ = fmt.Fprintf(w, "Question %d/%d\n", r.questions.Cursor()+1, r.questions.Len())
	_, _ = r.bold.Fprintln(w, question.Prompt())
	_, _ = fmt.Fprintln(w, FormatOptions(question.Options()))
	_, _ = fmt.Fprint(w, "Missing letter: ")

	input, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			_, _ = fmt.Fprintln(w)
			WriteSessionReport(w, r.Statistics())
			return errEnd
		}
	}

	candidate := resolveCandidate(input, question.Options())
	isCorrect := r.questions.Check(candidate)
	r.recorder.Record(r.questions.Cursor(), question.Word(), question.Answer(), candidate, isCorrect)
	slog.Default().Debug("answered a question",
		slog.Int("question", r.questions.Cursor()),
		slog.String("word", question.Word()),
		slog.String("candidate", candidate),
		slog.Bool("correct", isCorrect),
	)

	if isCorrect {
		_, _ = fmt.Fprint(w, "✅ ")
		_, _ = r.correct.Fprintf(w, `It's correct. The word is %s`, r.bold.Sprint(question.Word()))
	} else {
		_, _ = fmt.Fprint(w, "❌ ")
		if r.policy == AdvanceAlways {
			_, _ = r.wrong.Fprintf(w, `It's wrong. The missing letter of %s is "%s"`,
				r.bold.Sprint(question.Word()),
				question.Answer(),
			)
		} else {
			_, _ = r.wrong.Fprintf(w, `It's wrong. "%s" is not the missing letter, try again`, candidate)
		}
	}
	_, _ = fmt.Fprintln(w)
	if question.Meaning() != "" && (isCorrect || r.policy == AdvanceAlways) {
		_, _ = fmt.Fprintf(w, "   Meaning: %s\n", r.italic.Sprint(question.Meaning()))
	}
	_, _ = fmt.Fprintln(w)

	if isCorrect || r.policy == AdvanceAlways {
		r.questions.Advance()
	}
	return nil
}

// FormatOptions numbers the options so they can be picked by letter or by number
func FormatOptions(options []string) string {
	labels := make([]string, 0, len(options))
	for i, option := range options {
		labels = append(labels, fmt.Sprintf("%d) %s", i+1, option))
	}
	return "Options: " + strings.Join(labels, "  ")
}

// resolveCandidate lowercases the input and maps an option number to its letter
func resolveCandidate(input string, options []string) string {
	candidate := strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(candidate); err == nil && 1 <= n && n <= len(options) {
		return options[n-1]
	}
	return candidate
}
