package render

import (
	"html/template"
	"strings"

	"github.com/Rynhardt5/forest-and-flow/internal/models"
)

// RichText renders a structured text block sequence to an HTML fragment.
// Pure and deterministic: identical input yields byte-identical output.
//
// Recognised styles: normal (default), h1-h4, blockquote. Consecutive list
// items of the same kind are grouped into one <ul> or <ol>. Span marks:
// strong, em, and link annotations via markDefs. Anything unrecognised is
// skipped, never an error.
func RichText(blocks []models.Block) template.HTML {
	var b strings.Builder
	for i := 0; i < len(blocks); {
		blk := blocks[i]
		if blk.Type != "block" {
			i++ // unrecognised node kind: skipped
			continue
		}

		if blk.ListItem != "" {
			tag := listTag(blk.ListItem)
			if tag == "" {
				i++
				continue
			}
			b.WriteString("<" + tag + ">")
			for i < len(blocks) && blocks[i].Type == "block" && blocks[i].ListItem == blk.ListItem {
				b.WriteString("<li>")
				writeSpans(&b, blocks[i])
				b.WriteString("</li>")
				i++
			}
			b.WriteString("</" + tag + ">")
			continue
		}

		switch blk.Style {
		case "", "normal":
			writeWrapped(&b, "p", blk)
		case "h1", "h2", "h3", "h4":
			writeWrapped(&b, blk.Style, blk)
		case "blockquote":
			writeWrapped(&b, "blockquote", blk)
		default:
			// unrecognised style: skipped
		}
		i++
	}
	return template.HTML(b.String())
}

func listTag(kind string) string {
	switch kind {
	case "bullet":
		return "ul"
	case "number":
		return "ol"
	default:
		return ""
	}
}

func writeWrapped(b *strings.Builder, tag string, blk models.Block) {
	b.WriteString("<" + tag + ">")
	writeSpans(b, blk)
	b.WriteString("</" + tag + ">")
}

func writeSpans(b *strings.Builder, blk models.Block) {
	for _, span := range blk.Children {
		if span.Type != "span" {
			continue
		}
		var open, close []string
		for _, mark := range span.Marks {
			switch mark {
			case "strong":
				open = append(open, "<strong>")
				close = append([]string{"</strong>"}, close...)
			case "em":
				open = append(open, "<em>")
				close = append([]string{"</em>"}, close...)
			default:
				if def := findMarkDef(blk.MarkDefs, mark); def != nil && def.Type == "link" {
					open = append(open, linkOpen(def.Href))
					close = append([]string{"</a>"}, close...)
				}
				// unrecognised mark: skipped
			}
		}
		for _, t := range open {
			b.WriteString(t)
		}
		b.WriteString(template.HTMLEscapeString(span.Text))
		for _, t := range close {
			b.WriteString(t)
		}
	}
}

func findMarkDef(defs []models.MarkDef, key string) *models.MarkDef {
	for i := range defs {
		if defs[i].Key == key {
			return &defs[i]
		}
	}
	return nil
}

// linkOpen builds the anchor open tag. External-scheme targets open in a new
// browsing context without referrer or opener leakage; fragment and relative
// targets stay in-context.
func linkOpen(href string) string {
	if href == "" {
		href = "#"
	}
	escaped := template.HTMLEscapeString(href)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return `<a href="` + escaped + `" target="_blank" rel="noopener noreferrer">`
	}
	return `<a href="` + escaped + `">`
}
