package render

import (
	"testing"

	"github.com/Rynhardt5/forest-and-flow/internal/models"

	"github.com/stretchr/testify/assert"
)

func span(text string, marks ...string) models.Span {
	return models.Span{Type: "span", Text: text, Marks: marks}
}

func TestRichText_Paragraph(t *testing.T) {
	out := RichText([]models.Block{models.Paragraph("hello world")})
	assert.Equal(t, "<p>hello world</p>", string(out))
}

func TestRichText_StylesAndOrder(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Style: "h2", Children: []models.Span{span("Heading")}},
		models.Paragraph("first"),
		models.Blockquote("a quote"),
		models.Paragraph("second"),
	}
	out := RichText(blocks)
	assert.Equal(t,
		"<h2>Heading</h2><p>first</p><blockquote>a quote</blockquote><p>second</p>",
		string(out))
}

func TestRichText_Marks(t *testing.T) {
	blocks := []models.Block{
		{Type: "block", Style: "normal", Children: []models.Span{
			span("plain "),
			span("bold", "strong"),
			span(" and "),
			span("both", "strong", "em"),
		}},
	}
	out := RichText(blocks)
	assert.Equal(t,
		"<p>plain <strong>bold</strong> and <strong><em>both</em></strong></p>",
		string(out))
}

func TestRichText_Links(t *testing.T) {
	blocks := []models.Block{
		{
			Type:  "block",
			Style: "normal",
			Children: []models.Span{
				span("external", "l1"),
				span(" internal", "l2"),
			},
			MarkDefs: []models.MarkDef{
				{Key: "l1", Type: "link", Href: "https://example.com"},
				{Key: "l2", Type: "link", Href: "#about"},
			},
		},
	}
	out := string(RichText(blocks))
	assert.Contains(t, out,
		`<a href="https://example.com" target="_blank" rel="noopener noreferrer">external</a>`)
	assert.Contains(t, out, `<a href="#about"> internal</a>`)
}

func TestRichText_ListGrouping(t *testing.T) {
	item := func(kind, text string) models.Block {
		return models.Block{
			Type:     "block",
			Style:    "normal",
			ListItem: kind,
			Children: []models.Span{span(text)},
		}
	}
	blocks := []models.Block{
		item("bullet", "one"),
		item("bullet", "two"),
		models.Paragraph("break"),
		item("number", "first"),
		item("number", "second"),
	}
	out := RichText(blocks)
	assert.Equal(t,
		"<ul><li>one</li><li>two</li></ul><p>break</p><ol><li>first</li><li>second</li></ol>",
		string(out))
}

func TestRichText_UnknownNodesSkipped(t *testing.T) {
	blocks := []models.Block{
		models.Paragraph("before"),
		{Type: "image", Style: "normal"},
		{Type: "block", Style: "gallery", Children: []models.Span{span("hidden")}},
		{Type: "block", Style: "normal", Children: []models.Span{
			span("kept", "strong", "glitter"),
			{Type: "decorator", Text: "dropped"},
		}},
		models.Paragraph("after"),
	}
	out := RichText(blocks)
	// Unknown block kinds, styles, marks and span kinds all vanish without
	// disturbing the surrounding output.
	assert.Equal(t, "<p>before</p><p><strong>kept</strong></p><p>after</p>", string(out))
}

func TestRichText_EscapesHTML(t *testing.T) {
	out := RichText([]models.Block{models.Paragraph(`<script>alert("x")</script>`)})
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestRichText_Deterministic(t *testing.T) {
	blocks := []models.Block{
		models.Paragraph("one"),
		models.Blockquote("two"),
		{Type: "block", Style: "normal", ListItem: "bullet", Children: []models.Span{span("three")}},
	}
	first := RichText(blocks)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, RichText(blocks))
	}
}

func TestRichText_Empty(t *testing.T) {
	assert.Equal(t, "", string(RichText(nil)))
	assert.Equal(t, "", string(RichText([]models.Block{})))
}
