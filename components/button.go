package components

import (
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// ButtonProps defines the configuration options for a button.
type ButtonProps struct {
	Variant   tokens.Variant
	Color     tokens.Color
	Size      tokens.Size
	Rounded   tokens.Rounded
	Border    tokens.Border
	FullWidth bool
	// Circle renders a fixed-ratio round button, typically icon-only.
	Circle   bool
	Disabled bool
	// Type is the button type attribute; defaults to "button".
	Type string
	// Href switches rendering to an anchor styled as a button.
	Href  string
	ID    string
	Icon  HTML
	Class string
}

const buttonBaseClasses = "inline-flex items-center justify-center gap-2 font-medium transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:pointer-events-none"

// Classes computes the full utility class string for the button.
func (p ButtonProps) Classes() string {
	variant := fallbackVariant(p.Variant)
	color := fallbackColor(p.Color)
	size := fallbackSize(p.Size)

	bundle, _ := tokens.StyleFor(variant, color)

	rounded := tokens.RoundedClass(fallbackRounded(p.Rounded))
	if p.Circle {
		rounded = tokens.RoundedClass(tokens.RoundedFull)
	}

	width := ""
	if p.FullWidth && !p.Circle {
		width = "w-full"
	}

	return tokens.JoinClasses(
		buttonBaseClasses,
		bundle,
		buttonSizeClasses(size, p.Circle),
		rounded,
		borderClassIfAny(p.Border),
		width,
		p.Class,
	)
}

func buttonSizeClasses(size tokens.Size, circle bool) string {
	if circle {
		switch size {
		case tokens.SizeXS:
			return "h-7 w-7 text-xs"
		case tokens.SizeSM:
			return "h-8 w-8 text-sm"
		case tokens.SizeLG:
			return "h-11 w-11 text-base"
		case tokens.SizeXL:
			return "h-12 w-12 text-lg"
		default:
			return "h-10 w-10 text-sm"
		}
	}

	switch size {
	case tokens.SizeXS:
		return "px-2.5 py-1 text-xs"
	case tokens.SizeSM:
		return "px-3 py-1.5 text-sm"
	case tokens.SizeLG:
		return "px-5 py-2.5 text-base"
	case tokens.SizeXL:
		return "px-6 py-3 text-lg"
	default:
		return "px-4 py-2 text-sm"
	}
}

func borderClassIfAny(b tokens.Border) string {
	if b == "" || b == tokens.BorderNone {
		return ""
	}
	return tokens.BorderClass(b)
}

var buttonTemplate = template.Must(template.New("button").Parse(
	`{{- if .Href -}}
<a href="{{.Href}}"{{if .ID}} id="{{.ID}}"{{end}} class="{{.Classes}}"{{if .Disabled}} aria-disabled="true"{{end}}>{{if .Icon}}{{.Icon}}{{end}}{{.Label}}</a>
{{- else -}}
<button type="{{.Type}}"{{if .ID}} id="{{.ID}}"{{end}} class="{{.Classes}}"{{if .Disabled}} disabled{{end}}>{{if .Icon}}{{.Icon}}{{end}}{{.Label}}</button>
{{- end -}}`))

type buttonView struct {
	Href     string
	ID       string
	Type     string
	Classes  string
	Disabled bool
	Icon     HTML
	Label    string
}

// Button renders a button (or an anchor styled as one) with the given
// label.
func Button(p ButtonProps, label string) (string, error) {
	buttonType := p.Type
	if buttonType == "" {
		buttonType = "button"
	}

	return renderTemplate("button", buttonTemplate, buttonView{
		Href:     p.Href,
		ID:       p.ID,
		Type:     buttonType,
		Classes:  p.Classes(),
		Disabled: p.Disabled,
		Icon:     p.Icon,
		Label:    label,
	})
}
