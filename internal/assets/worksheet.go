package assets

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
)

const worksheetTemplateName = "worksheet.md.go.tmpl"

//go:embed templates/worksheet.md.go.tmpl
var fallbackWorksheetTemplate string

// WorksheetTemplate is the top-level data structure for worksheet templates
type WorksheetTemplate struct {
	Title       string
	Description string
	ShowAnswers bool
	Questions   []WorksheetQuestion
}

// WorksheetQuestion is one numbered question of a worksheet
type WorksheetQuestion struct {
	Number  int
	Word    string
	Meaning string
	Prompt  string
	Answer  string
	Options []string
}

// NewWorksheetTemplate numbers the questions from 1 in their quiz order
func NewWorksheetTemplate(title string, questions []quiz.Question, showAnswers bool) WorksheetTemplate {
	result := WorksheetTemplate{
		Title:       title,
		ShowAnswers: showAnswers,
		Questions:   make([]WorksheetQuestion, 0, len(questions)),
	}
	for i, question := range questions {
		result.Questions = append(result.Questions, WorksheetQuestion{
			Number:  i + 1,
			Word:    question.Word(),
			Meaning: question.Meaning(),
			Prompt:  question.Prompt(),
			Answer:  question.Answer(),
			Options: question.Options(),
		})
	}
	return result
}

// WriteWorksheet renders templateData with the template at templatePath,
// or with the embedded one when the path is empty or unusable.
func WriteWorksheet(output io.Writer, templatePath string, templateData WorksheetTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, worksheetTemplateName, fallbackWorksheetTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
