// Package entities contains domain entities used across the application.
package entities

import (
	"github.com/aliskhannn/tahsin-quran-bot/internal/domain/quiz"
)

// Material is one learning module from the main menu: its sections and its quiz.
type Material struct {
	ID             string                        `json:"id" yaml:"id" validate:"required,max=40,excludesall=:"`
	Title          string                        `json:"title" yaml:"title" validate:"required"`
	Description    string                        `json:"description" yaml:"description"`
	Order          int                           `json:"order" yaml:"order"`
	Available      bool                          `json:"available" yaml:"available"`
	Sections       []Section                     `json:"sections" yaml:"sections" validate:"dive"`
	Quiz           []quiz.MultipleChoiceQuestion `json:"quiz" yaml:"quiz" validate:"dive"`
	EssayQuestions []quiz.EssayQuestion          `json:"essayQuestions" yaml:"essayQuestions" validate:"dive"`
}

// HasQuiz reports whether the material has multiple-choice questions to start a quiz with.
func (m *Material) HasQuiz() bool {
	return len(m.Quiz) > 0
}

// Section is a numbered block of content inside a material.
type Section struct {
	ID      string        `json:"id" yaml:"id" validate:"required"`
	Title   string        `json:"title" yaml:"title" validate:"required"`
	Content []ContentItem `json:"content" yaml:"content"`
}

// Style tints details and titled item blocks.
type Style string

const (
	StyleError   Style = "error"
	StyleWarning Style = "warning"
	StyleInfo    Style = "info"
	StyleSuccess Style = "success"
)

// Detail is one entry of a details block, e.g. a kind of lahn.
type Detail struct {
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Style       Style  `json:"style" yaml:"style"`
}

// NumberedEntry is one entry of a numbered list.
type NumberedEntry struct {
	Number  string `json:"number" yaml:"number"`
	Text    string `json:"text" yaml:"text"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Example string `json:"example,omitempty" yaml:"example,omitempty"`
}
