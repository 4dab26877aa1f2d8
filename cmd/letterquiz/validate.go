package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/at-ishikawa/letterquiz/internal/wordlist"
)

func newValidateCommand() *cobra.Command {
	var strict bool

	command := &cobra.Command{
		Use:   "validate [word list]",
		Short: "Validate that every line of a word list can become a question",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := context.Background()
			source, err := openWordListSource(ctx, cfg, args)
			if err != nil {
				return err
			}
			defer func() {
				_ = source.Close()
			}()

			return validateWordList(ctx, cmd.OutOrStdout(), source, quizOptions(cfg.Quiz, 0, strict))
		},
	}

	command.Flags().BoolVar(&strict, "strict", false, "Reject lines without a meaning")
	return command
}

func validateWordList(ctx context.Context, w io.Writer, source wordlist.Source, opts []quiz.Option) error {
	questions, err := source.Load(ctx, opts...)
	if err != nil {
		lines := invalidLines(err)
		if len(lines) == 0 {
			return fmt.Errorf("source.Load() > %w", err)
		}
		printInvalidLines(w, lines)
		return fmt.Errorf("validation failed with %d error(s)", len(lines))
	}

	_, _ = fmt.Fprintf(w, "✓ All %d lines are valid questions\n", questions.Len())
	return nil
}
