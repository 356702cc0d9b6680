package render

import (
	"bytes"
	"testing"

	"github.com/Rynhardt5/forest-and-flow/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_RendersAllPagesFromDefaults(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	var buf bytes.Buffer

	home := content.ComposeHome(nil, nil)
	require.NoError(t, engine.Home(&buf, &home))
	out := buf.String()
	assert.Contains(t, out, "Grounded like a tree, responsive like water.")
	assert.Contains(t, out, "The Five Core Pillars")
	assert.Contains(t, out, "Why &#34;Forest &amp; Flow&#34;?")

	buf.Reset()
	services := content.ComposeServices(nil, nil)
	require.NoError(t, engine.Services(&buf, &services))
	out = buf.String()
	assert.Contains(t, out, "Counselling That Meets You Where You Are")
	assert.Contains(t, out, "$120")

	buf.Reset()
	contact := content.ComposeContact(nil, nil)
	require.NoError(t, engine.Contact(&buf, &contact))
	out = buf.String()
	assert.Contains(t, out, "Get in Touch")
	assert.Contains(t, out, "Send Message")
}

func TestEngine_ContactSuccessPanel(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	view := content.ComposeContact(nil, nil)
	view.Form.Submitted = true

	var buf bytes.Buffer
	require.NoError(t, engine.Contact(&buf, &view))
	out := buf.String()
	assert.Contains(t, out, view.Form.SuccessMessage)
	assert.NotContains(t, out, `name="message"`)
}
