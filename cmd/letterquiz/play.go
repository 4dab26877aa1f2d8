package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/letterquiz/internal/cli"
)

// AdvanceFlag is the --advance flag of the play command
type AdvanceFlag string

// Set implements pflag.Value.
func (a *AdvanceFlag) Set(v string) error {
	switch v {
	case string(cli.AdvanceOnCorrect):
		*a = AdvanceFlag(cli.AdvanceOnCorrect)
	case string(cli.AdvanceAlways):
		*a = AdvanceFlag(cli.AdvanceAlways)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, cli.AdvanceOnCorrect, cli.AdvanceAlways)
	}
	return nil
}

// String implements pflag.Value.
func (a *AdvanceFlag) String() string {
	if a == nil {
		return ""
	}
	return string(*a)
}

// Type implements pflag.Value.
func (a *AdvanceFlag) Type() string {
	return "AdvanceFlag"
}

var (
	_ pflag.Value = (*AdvanceFlag)(nil)
)

func newPlayCommand() *cobra.Command {
	var seed uint64
	var strict bool
	var advance AdvanceFlag

	command := &cobra.Command{
		Use:   "play [word list]",
		Short: "Play the missing letter quiz on a word list",
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

			questions, err := loadQuestionSet(ctx, source, quizOptions(cfg.Quiz, seed, strict))
			if err != nil {
				if lines := invalidLines(err); len(lines) > 0 {
					printInvalidLines(cmd.ErrOrStderr(), lines)
				}
				return err
			}

			policy := cli.AdvancePolicy(cfg.Quiz.Advance)
			if advance != "" {
				policy = cli.AdvancePolicy(advance)
			}
			quizCLI := cli.NewLetterQuizCLI(questions, policy, os.Stdin, cmd.OutOrStdout())
			fmt.Fprintf(cmd.OutOrStdout(), "Starting a quiz on %s with %d questions\n", source.name, quizCLI.GetQuestionCount())
			fmt.Fprintln(cmd.OutOrStdout(), "Type the missing letter or the number of an option.")
			fmt.Fprintln(cmd.OutOrStdout())

			return quizCLI.Run(ctx, quizCLI)
		},
	}

	command.Flags().Uint64Var(&seed, "seed", 0, "Seed of the letter draws. 0 uses quiz.seed of the configuration or a random seed")
	command.Flags().BoolVar(&strict, "strict", false, "Reject lines without a meaning")
	command.Flags().Var(&advance, "advance", `When to move to the next question: "correct" or "always" (default: quiz.advance of the configuration)`)
	return command
}
