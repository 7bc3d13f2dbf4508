package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumeui/lume/tokens"
)

func threeTabs() []TabItem {
	return []TabItem{
		{ID: "overview", Label: "Overview", Content: HTML("<p>intro</p>")},
		{ID: "pricing", Label: "Pricing", Content: HTML("<p>plans</p>")},
		{ID: "faq", Label: "FAQ", Disabled: true, Content: HTML("<p>answers</p>")},
	}
}

func TestTabsActiveItemResolution(t *testing.T) {
	t.Parallel()

	props := TabsProps{Items: threeTabs(), ActiveID: "pricing"}
	active, ok := props.ActiveItem()
	require.True(t, ok)
	assert.Equal(t, "pricing", active.ID)

	// Unknown or disabled IDs fall back to the first enabled item.
	props.ActiveID = "missing"
	active, ok = props.ActiveItem()
	require.True(t, ok)
	assert.Equal(t, "overview", active.ID)

	props.ActiveID = "faq"
	active, ok = props.ActiveItem()
	require.True(t, ok)
	assert.Equal(t, "overview", active.ID)

	_, ok = TabsProps{}.ActiveItem()
	assert.False(t, ok)
}

func TestTabsRendersTriggersAndPanels(t *testing.T) {
	t.Parallel()

	html, err := Tabs(TabsProps{
		Items:    threeTabs(),
		ActiveID: "pricing",
		Color:    tokens.ColorPrimary,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, `role="tab"`))
	assert.Equal(t, 3, strings.Count(html, `role="tabpanel"`))
	assert.Equal(t, 1, strings.Count(html, `aria-selected="true"`))
	assert.Equal(t, 2, strings.Count(html, `class="hidden"`))

	// The active trigger carries the colored underline.
	selected := extractTag(t, html, `aria-selected="true"`)
	assert.Contains(t, selected, "border-blue-600")
	assert.Contains(t, selected, `id="tab-pricing"`)

	// Panel content is trusted markup and passes through unescaped.
	assert.Contains(t, html, "<p>plans</p>")
}

func TestTabsDisabledTrigger(t *testing.T) {
	t.Parallel()

	html, err := Tabs(TabsProps{Items: threeTabs()})
	require.NoError(t, err)

	faq := extractTag(t, html, `id="tab-faq"`)
	assert.Contains(t, faq, " disabled>")
}

func TestTabsVerticalLayout(t *testing.T) {
	t.Parallel()

	html, err := Tabs(TabsProps{Items: threeTabs(), Vertical: true})
	require.NoError(t, err)

	assert.Contains(t, html, "border-r border-zinc-200")
	assert.NotContains(t, html, "border-b border-zinc-200")
}
