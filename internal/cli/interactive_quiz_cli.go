package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
)

var (
	errEnd = errors.New("end")
)

// InteractiveQuizCLI contains shared logic for interactive quiz CLIs
type InteractiveQuizCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	correct      *color.Color
	wrong        *color.Color
}

// newInteractiveQuizCLI creates the base CLI reading answers from stdin and writing to stdout
func newInteractiveQuizCLI(stdin io.Reader, stdout io.Writer) *InteractiveQuizCLI {
	return &InteractiveQuizCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
	}
}

//go:generate mockgen -source=interactive_quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// Run calls session.Session until it reports the end, fails, or the process is interrupted
func (cli *InteractiveQuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}
