package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/letterquiz/internal/assets"
	"github.com/at-ishikawa/letterquiz/internal/pdf"
)

func newWorksheetCommand() *cobra.Command {
	var seed uint64
	var title string
	var showAnswers bool
	var generatePDF bool

	command := &cobra.Command{
		Use:   "worksheet [word list]",
		Short: "Write a printable worksheet of the missing letter quiz",
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

			questions, err := loadQuestionSet(ctx, source, quizOptions(cfg.Quiz, seed, false))
			if err != nil {
				if lines := invalidLines(err); len(lines) > 0 {
					printInvalidLines(cmd.ErrOrStderr(), lines)
				}
				return err
			}

			if title == "" {
				title = source.name
			}
			markdownPath := filepath.Join(cfg.Worksheet.OutputDirectory, source.name+".md")
			templateData := assets.NewWorksheetTemplate(title, questions.Questions(), showAnswers)
			if err := writeWorksheet(markdownPath, cfg.Worksheet.Template, templateData); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Worksheet written to %s\n", markdownPath)

			if generatePDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath)
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF() > %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}

	command.Flags().Uint64Var(&seed, "seed", 0, "Seed of the letter draws. 0 uses quiz.seed of the configuration or a random seed")
	command.Flags().StringVar(&title, "title", "", "Title of the worksheet (default: the word list name)")
	command.Flags().BoolVar(&showAnswers, "answers", false, "Append the answers at the end of the worksheet")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Also convert the worksheet to PDF")
	return command
}

func writeWorksheet(markdownPath string, templatePath string, templateData assets.WorksheetTemplate) error {
	if err := os.MkdirAll(filepath.Dir(markdownPath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(markdownPath), err)
	}

	output, err := os.Create(markdownPath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteWorksheet(output, templatePath, templateData); err != nil {
		return fmt.Errorf("assets.WriteWorksheet() > %w", err)
	}
	return nil
}
