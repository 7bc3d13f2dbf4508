package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeui/lume/tokens"
)

func TestFileUploadRendersDropzone(t *testing.T) {
	t.Parallel()

	html, err := FileUpload(FileUploadProps{
		Name:        "attachments",
		Label:       "Drop invoices here",
		Multiple:    true,
		Accept:      []string{"application/pdf", ".png"},
		MaxSizeHint: "up to 10 MB",
		Color:       tokens.ColorPrimary,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "border-dashed")
	assert.Contains(t, html, `type="file"`)
	assert.Contains(t, html, " multiple")
	assert.Contains(t, html, `accept="application/pdf,.png"`)
	assert.Contains(t, html, "Drop invoices here")
	assert.Contains(t, html, "up to 10 MB")
	assert.Contains(t, html, "sr-only")
}

func TestFileUploadDefaultLabel(t *testing.T) {
	t.Parallel()

	html, err := FileUpload(FileUploadProps{Name: "file"})
	require.NoError(t, err)

	assert.Contains(t, html, "Drop files here or click to browse")
	assert.NotContains(t, html, "accept=")
	assert.NotContains(t, html, " multiple")
}

func TestFileUploadDisabled(t *testing.T) {
	t.Parallel()

	html, err := FileUpload(FileUploadProps{Name: "file", Disabled: true})
	require.NoError(t, err)

	assert.Contains(t, html, "cursor-not-allowed")
	assert.Contains(t, html, " disabled")
}
