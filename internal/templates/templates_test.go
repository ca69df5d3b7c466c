package templates

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	templates, err := Load(FS)
	require.NoError(t, err)

	assert.Contains(t, templates, "index.html")
	assert.NotContains(t, templates, BaseTemplate)
	assert.NotContains(t, templates, partialsTemplate)
}

func TestLoad_BrokenPage(t *testing.T) {
	fsys := fstest.MapFS{
		BaseTemplate:     {Data: []byte(`{{template "content" .}}`)},
		partialsTemplate: {Data: []byte(``)},
		"broken.html":    {Data: []byte(`{{define "content"}}{{.Missing`)},
	}

	_, err := Load(fsys)
	assert.Error(t, err)
}

func TestLoad_RendersWithFuncs(t *testing.T) {
	fsys := fstest.MapFS{
		BaseTemplate:     {Data: []byte(`{{template "content" .}}`)},
		partialsTemplate: {Data: []byte(`{{define "greet"}}hi {{.Name}}{{end}}`)},
		"page.html":      {Data: []byte(`{{define "content"}}{{template "greet" (dict "Name" "bob")}} {{formatDate .When}} [{{fieldError .Errs "title"}}]{{end}}`)},
	}

	templates, err := Load(fsys)
	require.NoError(t, err)

	var buf bytes.Buffer
	data := map[string]any{
		"When": time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		"Errs": map[string]string{"title": "Title is required"},
	}
	require.NoError(t, templates["page.html"].Execute(&buf, data))
	assert.Equal(t, "hi bob May 1, 2024 12:30 [Title is required]", buf.String())
}

func TestDict(t *testing.T) {
	_, err := dict("a")
	assert.Error(t, err)

	_, err = dict(1, 2)
	assert.Error(t, err)

	m, err := dict("a", 1, "b", "x")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, m)
}
