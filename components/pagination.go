package components

import (
	"fmt"
	"html/template"

	"github.com/lumeui/lume/pager"
	"github.com/lumeui/lume/tokens"
)

// PaginationProps defines the configuration options for a pagination
// control. Total/Active/Siblings/Boundaries feed the range builder
// unchanged, so its input contract applies here too.
type PaginationProps struct {
	Total      int
	Active     int
	Siblings   int
	Boundaries int
	Variant    tokens.Variant
	Color      tokens.Color
	Size       tokens.Size
	Rounded    tokens.Rounded
	// ShowEdges adds first/last jump controls around prev/next.
	ShowEdges bool
	// HrefPattern is the fmt pattern producing page links; defaults to
	// "?page=%d".
	HrefPattern string
	Class       string
}

// DefaultPaginationProps returns props with one sibling and one boundary
// page, the shape most pagination bars use.
func DefaultPaginationProps() PaginationProps {
	return PaginationProps{Siblings: 1, Boundaries: 1, HrefPattern: "?page=%d"}
}

type paginationItem struct {
	Gap      bool
	Page     int
	Label    string
	Href     string
	Current  bool
	Disabled bool
	Classes  string
}

type paginationView struct {
	Classes string
	Items   []paginationItem
}

var paginationTemplate = template.Must(template.New("pagination").Parse(
	`<nav class="{{.Classes}}" role="navigation">
{{- range .Items}}
{{- if .Gap}}
<span class="{{.Classes}}">&#8230;</span>
{{- else}}
<a href="{{.Href}}" class="{{.Classes}}"{{if .Current}} aria-current="page"{{end}}{{if .Disabled}} aria-disabled="true" tabindex="-1"{{end}}>{{.Label}}</a>
{{- end}}
{{- end}}
</nav>`))

// Pagination renders a full pagination bar: optional first/last jumps,
// prev/next steps, the computed page tokens, and gap separators. The page
// marked current is also disabled.
func Pagination(p PaginationProps) (string, error) {
	pattern := p.HrefPattern
	if pattern == "" {
		pattern = "?page=%d"
	}

	rangeTokens, err := pager.Build(p.Total, p.Active, p.Siblings, p.Boundaries)
	if err != nil {
		return "", err
	}
	controls := pager.ControlsFor(p.Total, p.Active)

	variant := fallbackVariant(p.Variant)
	color := fallbackColor(p.Color)
	size := fallbackSize(p.Size)
	rounded := fallbackRounded(p.Rounded)

	bundle, _ := tokens.StyleFor(variant, color)
	activeBundle, _ := tokens.StyleFor(tokens.VariantDefault, color)

	itemBase := tokens.JoinClasses(
		"inline-flex items-center justify-center font-medium transition-colors",
		paginationSizeClasses(size),
		tokens.RoundedClass(rounded),
	)
	pageClasses := tokens.JoinClasses(itemBase, bundle)
	currentClasses := tokens.JoinClasses(itemBase, activeBundle, "pointer-events-none")
	disabledClasses := tokens.JoinClasses(itemBase, bundle, "opacity-50 pointer-events-none")
	gapClasses := tokens.JoinClasses(itemBase, "text-zinc-400 select-none")

	stepItem := func(label string, page int, disabled bool) paginationItem {
		classes := pageClasses
		if disabled {
			classes = disabledClasses
		}
		return paginationItem{
			Label:    label,
			Page:     page,
			Href:     fmt.Sprintf(pattern, page),
			Disabled: disabled,
			Classes:  classes,
		}
	}

	items := make([]paginationItem, 0, len(rangeTokens)+4)
	if p.ShowEdges {
		items = append(items, stepItem("«", 1, controls.FirstDisabled))
	}
	items = append(items, stepItem("‹", p.Active-1, controls.PrevDisabled))

	for _, tok := range rangeTokens {
		if tok.Kind == pager.KindGap {
			items = append(items, paginationItem{Gap: true, Classes: gapClasses})
			continue
		}

		item := paginationItem{
			Page:    tok.Page,
			Label:   fmt.Sprintf("%d", tok.Page),
			Href:    fmt.Sprintf(pattern, tok.Page),
			Classes: pageClasses,
		}
		if tok.Page == p.Active {
			item.Current = true
			item.Disabled = true
			item.Classes = currentClasses
		}
		items = append(items, item)
	}

	items = append(items, stepItem("›", p.Active+1, controls.NextDisabled))
	if p.ShowEdges {
		items = append(items, stepItem("»", p.Total, controls.LastDisabled))
	}

	return renderTemplate("pagination", paginationTemplate, paginationView{
		Classes: tokens.JoinClasses("flex items-center gap-1", p.Class),
		Items:   items,
	})
}

func paginationSizeClasses(size tokens.Size) string {
	switch size {
	case tokens.SizeXS:
		return "h-7 min-w-7 px-1.5 text-xs"
	case tokens.SizeSM:
		return "h-8 min-w-8 px-2 text-sm"
	case tokens.SizeLG:
		return "h-11 min-w-11 px-3 text-base"
	case tokens.SizeXL:
		return "h-12 min-w-12 px-3.5 text-lg"
	default:
		return "h-10 min-w-10 px-2.5 text-sm"
	}
}
