package components

import (
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// TabItem is one trigger/panel pair of a tab set.
type TabItem struct {
	ID       string
	Label    string
	Disabled bool
	Content  HTML
}

// TabsProps defines the configuration options for a tab set. ActiveID
// selects the visible panel; when it matches no item the first enabled
// item is used.
type TabsProps struct {
	Items    []TabItem
	ActiveID string
	Color    tokens.Color
	Size     tokens.Size
	Vertical bool
	Class    string
}

// ActiveItem resolves ActiveID against Items, falling back to the first
// enabled item. The second return is false when no item can be active.
func (p TabsProps) ActiveItem() (TabItem, bool) {
	for _, item := range p.Items {
		if item.ID == p.ActiveID && !item.Disabled {
			return item, true
		}
	}
	for _, item := range p.Items {
		if !item.Disabled {
			return item, true
		}
	}
	return TabItem{}, false
}

type tabView struct {
	TabItem
	Active         bool
	TriggerClasses string
	PanelClasses   string
}

type tabsView struct {
	Classes     string
	ListClasses string
	Tabs        []tabView
}

var tabsTemplate = template.Must(template.New("tabs").Parse(
	`<div class="{{.Classes}}">
<div class="{{.ListClasses}}" role="tablist">
{{- range .Tabs}}
<button type="button" role="tab" id="tab-{{.ID}}" aria-controls="panel-{{.ID}}" aria-selected="{{if .Active}}true{{else}}false{{end}}" class="{{.TriggerClasses}}"{{if .Disabled}} disabled{{end}}>{{.Label}}</button>
{{- end}}
</div>
{{- range .Tabs}}
<div role="tabpanel" id="panel-{{.ID}}" aria-labelledby="tab-{{.ID}}" class="{{.PanelClasses}}">{{.Content}}</div>
{{- end}}
</div>`))

// Tabs renders tab triggers and their panels; inactive panels are hidden.
func Tabs(p TabsProps) (string, error) {
	color := fallbackColor(p.Color)
	size := fallbackSize(p.Size)

	active, _ := p.ActiveItem()

	accent, _ := tokens.StyleFor(tokens.VariantSubtle, color)
	activeBorder := tabsActiveBorder(color)

	triggerBase := tokens.JoinClasses(
		"border-b-2 border-transparent font-medium transition-colors disabled:opacity-50 disabled:pointer-events-none",
		tabsTriggerSize(size),
		accent,
	)

	layout := "flex flex-col gap-4"
	listLayout := "flex flex-row gap-1 border-b border-zinc-200"
	if p.Vertical {
		layout = "flex flex-row gap-4"
		listLayout = "flex flex-col gap-1 border-r border-zinc-200"
	}

	tabs := make([]tabView, 0, len(p.Items))
	for _, item := range p.Items {
		isActive := item.ID == active.ID

		trigger := triggerBase
		panel := "hidden"
		if isActive {
			trigger = tokens.JoinClasses(triggerBase, activeBorder)
			panel = ""
		}

		tabs = append(tabs, tabView{
			TabItem:        item,
			Active:         isActive,
			TriggerClasses: trigger,
			PanelClasses:   panel,
		})
	}

	return renderTemplate("tabs", tabsTemplate, tabsView{
		Classes:     tokens.JoinClasses(layout, p.Class),
		ListClasses: listLayout,
		Tabs:        tabs,
	})
}

func tabsActiveBorder(color tokens.Color) string {
	switch color {
	case tokens.ColorPrimary:
		return "border-blue-600 text-blue-700"
	case tokens.ColorSecondary:
		return "border-purple-600 text-purple-700"
	case tokens.ColorSuccess:
		return "border-emerald-600 text-emerald-700"
	case tokens.ColorWarning:
		return "border-amber-500 text-amber-700"
	case tokens.ColorDanger:
		return "border-rose-600 text-rose-700"
	case tokens.ColorInfo:
		return "border-cyan-600 text-cyan-700"
	default:
		return "border-zinc-700 text-zinc-900"
	}
}

func tabsTriggerSize(size tokens.Size) string {
	switch size {
	case tokens.SizeXS:
		return "px-2.5 py-1.5 text-xs"
	case tokens.SizeSM:
		return "px-3 py-2 text-sm"
	case tokens.SizeLG:
		return "px-4 py-2.5 text-base"
	case tokens.SizeXL:
		return "px-5 py-3 text-lg"
	default:
		return "px-3.5 py-2 text-sm"
	}
}
