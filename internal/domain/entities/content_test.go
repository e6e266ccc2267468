package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestContentItem_Kind(t *testing.T) {
	text := &ContentBody{Text: "ب"}

	tests := []struct {
		name string
		item ContentItem
		want ContentKind
	}{
		{name: "grid", item: ContentItem{Type: "grid", Items: []string{"a"}}, want: KindGrid},
		{name: "list", item: ContentItem{Type: "list", Items: []string{"a"}}, want: KindList},
		{name: "grid without items", item: ContentItem{Type: "grid", Text: "x"}, want: KindText},
		{name: "details over items", item: ContentItem{Details: []Detail{{Type: "Lahn Jali"}}, Items: []string{"a"}, Title: "t"}, want: KindDetails},
		{name: "titled items", item: ContentItem{Title: "Hukum", Items: []string{"a"}}, want: KindTitledItems},
		{name: "items without title", item: ContentItem{Items: []string{"a"}}, want: KindUnknown},
		{name: "labeled text", item: ContentItem{Label: "Definisi", Text: "x"}, want: KindLabeledText},
		{name: "label only", item: ContentItem{Label: "Definisi"}, want: KindUnknown},
		{name: "plain text", item: ContentItem{Text: "x"}, want: KindText},
		{name: "typed arabic", item: ContentItem{Type: "arabic", Content: text}, want: KindArabic},
		{name: "typed heading", item: ContentItem{Type: "heading", Content: text}, want: KindHeading},
		{name: "typed numbered list", item: ContentItem{Type: "numbered_list", Content: &ContentBody{Entries: []NumberedEntry{{Number: "1"}}}}, want: KindNumberedList},
		{name: "typed without content", item: ContentItem{Type: "arabic"}, want: KindUnknown},
		{name: "empty", item: ContentItem{}, want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Kind())
		})
	}
}

func TestContentBody_UnmarshalJSON(t *testing.T) {
	var items []ContentItem
	data := `[
		{"type": "arabic", "content": "ا ب ت"},
		{"type": "numbered_list", "content": [{"number": "1", "text": "Hams", "detail": "Berhembus"}]}
	]`
	require.NoError(t, json.Unmarshal([]byte(data), &items))
	require.Len(t, items, 2)

	assert.Equal(t, "ا ب ت", items[0].Content.Text)
	assert.Nil(t, items[0].Content.Entries)

	require.Len(t, items[1].Content.Entries, 1)
	assert.Equal(t, NumberedEntry{Number: "1", Text: "Hams", Detail: "Berhembus"}, items[1].Content.Entries[0])

	var bad ContentItem
	require.Error(t, json.Unmarshal([]byte(`{"type": "text", "content": 5}`), &bad))
}

func TestContentBody_UnmarshalYAML(t *testing.T) {
	var items []ContentItem
	data := `
- type: heading
  content: Sifat Huruf
- type: numbered_list
  content:
    - number: "1"
      text: Jahr
      example: "ب"
`
	require.NoError(t, yaml.Unmarshal([]byte(data), &items))
	require.Len(t, items, 2)

	assert.Equal(t, KindHeading, items[0].Kind())
	assert.Equal(t, "Sifat Huruf", items[0].Content.Text)
	assert.Equal(t, KindNumberedList, items[1].Kind())
	assert.Equal(t, "ب", items[1].Content.Entries[0].Example)

	var bad ContentItem
	require.Error(t, yaml.Unmarshal([]byte("type: text\ncontent:\n  a: b\n"), &bad))
}

func TestContentBody_MarshalJSONRoundTripsShape(t *testing.T) {
	out, err := json.Marshal(ContentBody{Text: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `"x"`, string(out))

	out, err = json.Marshal(ContentBody{Entries: []NumberedEntry{{Number: "1", Text: "a"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"number": "1", "text": "a"}]`, string(out))
}
