package entities

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentKind is the presentation a content item maps to.
type ContentKind string

const (
	KindGrid          ContentKind = "grid"
	KindList          ContentKind = "list"
	KindDetails       ContentKind = "details"
	KindTitledItems   ContentKind = "titled_items"
	KindLabeledText   ContentKind = "labeled_text"
	KindText          ContentKind = "text"
	KindArabic        ContentKind = "arabic"
	KindArabicExample ContentKind = "arabic_example"
	KindArabicLetters ContentKind = "arabic_letters"
	KindArabicPhrase  ContentKind = "arabic_phrase"
	KindHeading       ContentKind = "heading"
	KindNumberedList  ContentKind = "numbered_list"
	KindUnknown       ContentKind = "unknown"
)

// typedKinds are the kinds selected by the item's type tag alone.
var typedKinds = map[string]ContentKind{
	"text":           KindText,
	"arabic":         KindArabic,
	"arabic_example": KindArabicExample,
	"arabic_letters": KindArabicLetters,
	"arabic_phrase":  KindArabicPhrase,
	"heading":        KindHeading,
	"numbered_list":  KindNumberedList,
}

// ContentItem is a single piece of section content. It carries the union of
// the generic shape (label/text/title/details/items) and the typed shape
// (type + content).
type ContentItem struct {
	Label   string       `json:"label,omitempty" yaml:"label,omitempty"`
	Text    string       `json:"text,omitempty" yaml:"text,omitempty"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Details []Detail     `json:"details,omitempty" yaml:"details,omitempty"`
	Items   []string     `json:"items,omitempty" yaml:"items,omitempty"`
	Style   Style        `json:"style,omitempty" yaml:"style,omitempty"`
	Type    string       `json:"type,omitempty" yaml:"type,omitempty"`
	Content *ContentBody `json:"content,omitempty" yaml:"content,omitempty"`
}

// Kind classifies the item. Typed items win; otherwise the first matching
// generic shape in order grid, list, details, titled items, labeled text, text.
func (c ContentItem) Kind() ContentKind {
	if kind, ok := typedKinds[c.Type]; ok && c.Content != nil {
		return kind
	}

	switch {
	case c.Type == "grid" && len(c.Items) > 0:
		return KindGrid
	case c.Type == "list" && len(c.Items) > 0:
		return KindList
	case len(c.Details) > 0:
		return KindDetails
	case len(c.Items) > 0 && c.Title != "":
		return KindTitledItems
	case c.Label != "" && c.Text != "":
		return KindLabeledText
	case c.Text != "":
		return KindText
	default:
		return KindUnknown
	}
}

// ContentBody is the payload of a typed item: plain text or numbered entries.
type ContentBody struct {
	Text    string
	Entries []NumberedEntry
}

// UnmarshalJSON accepts either a string or a list of numbered entries.
func (b *ContentBody) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		b.Text = text
		return nil
	}

	var entries []NumberedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("content must be a string or a list of entries: %w", err)
	}
	b.Entries = entries
	return nil
}

// MarshalJSON writes the body back in the shape it was read in.
func (b ContentBody) MarshalJSON() ([]byte, error) {
	if b.Entries != nil {
		return json.Marshal(b.Entries)
	}
	return json.Marshal(b.Text)
}

// UnmarshalYAML accepts either a scalar or a sequence of numbered entries.
func (b *ContentBody) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return value.Decode(&b.Text)
	case yaml.SequenceNode:
		return value.Decode(&b.Entries)
	default:
		return fmt.Errorf("line %d: content must be a string or a list of entries", value.Line)
	}
}
