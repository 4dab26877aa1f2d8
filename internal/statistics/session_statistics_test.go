package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSessionStatistics(t *testing.T) {
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		attempts     []Attempt
		want         SessionStatistics
		wantAccuracy float64
	}{
		{
			name:     "no attempts",
			attempts: nil,
			want:     SessionStatistics{},
		},
		{
			name: "all correct on the first try",
			attempts: []Attempt{
				{QuestionIndex: 0, Word: "hello", Correct: true, AnsweredAt: start},
				{QuestionIndex: 1, Word: "world", Correct: true, AnsweredAt: start.Add(5 * time.Second)},
			},
			want: SessionStatistics{
				Attempts:        2,
				CorrectAnswers:  2,
				Questions:       2,
				FirstTryCorrect: 2,
				Duration:        5 * time.Second,
			},
			wantAccuracy: 1,
		},
		{
			name: "retries and repeated words",
			attempts: []Attempt{
				{QuestionIndex: 0, Word: "cat", Correct: false, AnsweredAt: start},
				{QuestionIndex: 0, Word: "cat", Correct: false, AnsweredAt: start.Add(time.Second)},
				{QuestionIndex: 0, Word: "cat", Correct: true, AnsweredAt: start.Add(2 * time.Second)},
				{QuestionIndex: 1, Word: "cat", Correct: false, AnsweredAt: start.Add(3 * time.Second)},
			},
			want: SessionStatistics{
				Attempts:        4,
				CorrectAnswers:  1,
				WrongAnswers:    3,
				Questions:       2,
				FirstTryCorrect: 0,
				MissedWords:     []string{"cat", "cat"},
				Duration:        3 * time.Second,
			},
			wantAccuracy: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSessionStatistics(tt.attempts)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantAccuracy, got.Accuracy(), 1e-9)
		})
	}
}

func TestRecorder(t *testing.T) {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	recorder := NewRecorder()
	recorder.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	first := recorder.Record(0, "hello", "e", "a", false)
	recorder.Record(0, "hello", "e", "e", true)

	assert.Equal(t, "a", first.Candidate)
	assert.Len(t, recorder.Attempts(), 2)

	got := recorder.Statistics()
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, 1, got.Questions)
	assert.Equal(t, []string{"hello"}, got.MissedWords)
	assert.Equal(t, time.Second, got.Duration)
}
