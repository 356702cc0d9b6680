package models

// Rich text as delivered by the content source: an ordered sequence of typed
// blocks, each carrying styled spans and mark definitions. Field names follow
// the wire format, so records decode directly from query responses.

type Block struct {
	Key      string    `json:"_key"`
	Type     string    `json:"_type"`
	Style    string    `json:"style"`
	ListItem string    `json:"listItem,omitempty"`
	Level    int       `json:"level,omitempty"`
	Children []Span    `json:"children"`
	MarkDefs []MarkDef `json:"markDefs"`
}

type Span struct {
	Key   string   `json:"_key"`
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// MarkDef is an annotation referenced by key from a span's marks.
// Only link annotations carry an Href.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href,omitempty"`
}

// Paragraph builds a plain normal-style block from a single run of text.
// Used by the default content table.
func Paragraph(text string) Block {
	return Block{
		Type:     "block",
		Style:    "normal",
		Children: []Span{{Type: "span", Text: text}},
	}
}

// Blockquote builds a quote block from a single run of text.
func Blockquote(text string) Block {
	return Block{
		Type:     "block",
		Style:    "blockquote",
		Children: []Span{{Type: "span", Text: text}},
	}
}
