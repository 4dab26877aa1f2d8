package wordlist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/letterquiz/internal/quiz"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// yamlWordList is the mapping form of a YAML word list.
// A bare sequence of entries is accepted as well.
type yamlWordList struct {
	Name  string       `yaml:"name"`
	Words []quiz.Entry `yaml:"words" validate:"dive"`
}

var entryValidator = validator.New()

func parseYAML(content []byte) ([]quiz.Entry, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(content)).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}

	var list yamlWordList
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&list.Words); err != nil {
			return nil, fmt.Errorf("node.Decode() > %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("node.Decode() > %w", err)
		}
	default:
		return nil, fmt.Errorf("a word list must be a sequence or a mapping with words, line %d", root.Line)
	}

	if err := entryValidator.Struct(list); err != nil {
		return nil, fmt.Errorf("validator.Struct() > %w", err)
	}

	for i := range list.Words {
		list.Words[i].HasMeaning = strings.TrimSpace(list.Words[i].Meaning) != ""
	}
	return list.Words, nil
}
