package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/at-ishikawa/letterquiz/internal/statistics"
)

// WriteSessionReport displays the statistics of a session
func WriteSessionReport(w io.Writer, stats statistics.SessionStatistics) {
	if stats.Attempts == 0 {
		_, _ = fmt.Fprintln(w, "No answers were given in this session.")
		return
	}

	_, _ = fmt.Fprintln(w, "Session Report")
	_, _ = fmt.Fprintln(w, "==============")
	_, _ = fmt.Fprintf(w, "%-20s %d\n", "Questions:", stats.Questions)
	_, _ = fmt.Fprintf(w, "%-20s %d / %d\n", "Correct / Attempts:", stats.CorrectAnswers, stats.Attempts)
	_, _ = fmt.Fprintf(w, "%-20s %d\n", "First try correct:", stats.FirstTryCorrect)
	_, _ = fmt.Fprintf(w, "%-20s %.0f%%\n", "Accuracy:", stats.Accuracy()*100)
	_, _ = fmt.Fprintf(w, "%-20s %s\n", "Duration:", stats.Duration.Round(time.Second))
	if len(stats.MissedWords) > 0 {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", "Words to review:", strings.Join(stats.MissedWords, ", "))
	}
}
