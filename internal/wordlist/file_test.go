package wordlist

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "assets/exercise/unit3.txt", want: FormatText},
		{path: "unit3", want: FormatText},
		{path: "words.yml", want: FormatYAML},
		{path: "WORDS.YAML", want: FormatYAML},
		{path: "glossary.html", want: FormatHTML},
		{path: "glossary.xhtml", want: FormatHTML},
		{path: "words.csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{name: "", want: FormatAuto},
		{name: "txt", want: FormatText},
		{name: "yml", want: FormatYAML},
		{name: "YAML", want: FormatYAML},
		{name: "htm", want: FormatHTML},
		{name: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileSource_Load(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		format      Format
		opts        []quiz.Option
		wantWords   []string
		wantMeaning []string
		wantErr     bool
		wantLine    int
	}{
		{
			name:        "text file",
			fileName:    "unit3.txt",
			content:     "hello:哈喽\n\nworld:世界\n",
			wantWords:   []string{"hello", "world"},
			wantMeaning: []string{"哈喽", "世界"},
		},
		{
			name:     "text file keeps the line number of invalid lines",
			fileName: "unit3.txt",
			content:  "hello:哈喽\n\n123:number\n",
			wantErr:  true,
			wantLine: 3,
		},
		{
			name:     "yaml sequence",
			fileName: "words.yml",
			content: `- word: Apple
  meaning: 苹果
- word: banana
  meaning: 香蕉
`,
			wantWords:   []string{"apple", "banana"},
			wantMeaning: []string{"苹果", "香蕉"},
		},
		{
			name:     "yaml mapping with words",
			fileName: "words.yaml",
			content: `name: fruits
words:
  - word: cherry
    meaning: 樱桃
`,
			wantWords:   []string{"cherry"},
			wantMeaning: []string{"樱桃"},
		},
		{
			name:     "yaml entry without meaning is rejected when a meaning is required",
			fileName: "words.yml",
			content: `- word: cherry
`,
			opts:     []quiz.Option{quiz.WithRequireMeaning(true)},
			wantErr:  true,
			wantLine: 1,
		},
		{
			name:     "yaml entry without a word",
			fileName: "words.yml",
			content: `- meaning: nothing
`,
			wantErr: true,
		},
		{
			name:     "yaml scalar",
			fileName: "words.yml",
			content:  "just a string\n",
			wantErr:  true,
		},
		{
			name:     "empty yaml",
			fileName: "words.yml",
			content:  "",
		},
		{
			name:     "html definition list and table",
			fileName: "glossary.html",
			content: `<html><body>
<dl>
  <dt>ice  cream</dt><dd>冰淇淋</dd>
  <dt>ap<b>p</b>le</dt><dd>苹果</dd><dd>fruit</dd>
</dl>
<table>
  <tr><th>Word</th><th>Meaning</th></tr>
  <tr><td>dog</td><td>狗</td></tr>
  <tr><td></td><td>skipped</td></tr>
</table>
</body></html>`,
			wantWords:   []string{"ice cream", "apple", "dog"},
			wantMeaning: []string{"冰淇淋", "苹果; fruit", "狗"},
		},
		{
			name:        "explicit format overrides the extension",
			fileName:    "words.list",
			content:     "cat:动物\n",
			format:      FormatText,
			wantWords:   []string{"cat"},
			wantMeaning: []string{"动物"},
		},
		{
			name:     "unknown extension",
			fileName: "words.csv",
			content:  "cat,动物\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.fileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			source := NewFileSource(path, tt.format)
			assert.Equal(t, path, source.Path())

			opts := append([]quiz.Option{quiz.WithRandomSource(quiz.NewRandomSource(1))}, tt.opts...)
			got, err := source.Load(context.Background(), opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.wantLine > 0 {
					var lineErr *quiz.InvalidLineError
					require.ErrorAs(t, err, &lineErr)
					assert.Equal(t, tt.wantLine, lineErr.Line)
				}
				return
			}
			require.NoError(t, err)

			var words, meanings []string
			for _, q := range got.Questions() {
				words = append(words, q.Word())
				meanings = append(meanings, q.Meaning())
			}
			assert.Equal(t, tt.wantWords, words)
			assert.Equal(t, tt.wantMeaning, meanings)
		})
	}
}

func TestFileSource_Load_MissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "missing.txt"), FormatAuto)

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
