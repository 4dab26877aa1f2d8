package statistics

import (
	"time"
)

// Attempt is one answer given to one question of a session
type Attempt struct {
	QuestionIndex int
	Word          string
	Answer        string
	Candidate     string
	Correct       bool
	AnsweredAt    time.Time
}

// SessionStatistics summarizes the attempts of a session
type SessionStatistics struct {
	Attempts        int           // Every answer given
	CorrectAnswers  int           // Answers that matched
	WrongAnswers    int           // Answers that did not match
	Questions       int           // Distinct questions answered at least once
	FirstTryCorrect int           // Questions whose first answer was correct
	MissedWords     []string      // Words with at least one wrong answer, in order of first miss
	Duration        time.Duration // From the first to the last answer
}

// Accuracy is the share of correct answers, 0 without any attempt
func (s SessionStatistics) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(s.Attempts)
}

// Recorder collects attempts during a session
type Recorder struct {
	attempts []Attempt
	now      func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{
		now: time.Now,
	}
}

// Record appends an attempt stamped with the current time
func (r *Recorder) Record(questionIndex int, word, answer, candidate string, correct bool) Attempt {
	attempt := Attempt{
		QuestionIndex: questionIndex,
		Word:          word,
		Answer:        answer,
		Candidate:     candidate,
		Correct:       correct,
		AnsweredAt:    r.now(),
	}
	r.attempts = append(r.attempts, attempt)
	return attempt
}

// Attempts returns the attempts in the order they were recorded
func (r *Recorder) Attempts() []Attempt {
	return append([]Attempt(nil), r.attempts...)
}

func (r *Recorder) Statistics() SessionStatistics {
	return CalculateSessionStatistics(r.attempts)
}

// CalculateSessionStatistics aggregates attempts.
// Questions are told apart by their index so repeated words count separately.
func CalculateSessionStatistics(attempts []Attempt) SessionStatistics {
	var result SessionStatistics
	seen := make(map[int]struct{})
	missed := make(map[int]struct{})

	for _, attempt := range attempts {
		result.Attempts++
		if attempt.Correct {
			result.CorrectAnswers++
		} else {
			result.WrongAnswers++
		}

		if _, ok := seen[attempt.QuestionIndex]; !ok {
			seen[attempt.QuestionIndex] = struct{}{}
			result.Questions++
			if attempt.Correct {
				result.FirstTryCorrect++
			}
		}

		if !attempt.Correct {
			if _, ok := missed[attempt.QuestionIndex]; !ok {
				missed[attempt.QuestionIndex] = struct{}{}
				result.MissedWords = append(result.MissedWords, attempt.Word)
			}
		}
	}

	if len(attempts) > 1 {
		result.Duration = attempts[len(attempts)-1].AnsweredAt.Sub(attempts[0].AnsweredAt)
	}
	return result
}
