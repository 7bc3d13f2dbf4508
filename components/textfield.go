package components

import (
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// TextFieldProps defines the configuration options for a text input with
// its surrounding label, description and error slots.
type TextFieldProps struct {
	Name        string
	Label       string
	Placeholder string
	Value       string
	Description string
	// Error switches the field into its error state and renders the
	// message below the input.
	Error string
	// Type is the input type attribute; defaults to "text".
	Type string
	// Floating renders the label inside the field, floating on focus.
	Floating bool
	Disabled bool
	Color    tokens.Color
	Size     tokens.Size
	Rounded  tokens.Rounded
	Class    string
}

// Classes computes the class string for the input element itself.
func (p TextFieldProps) Classes() string {
	color := fallbackColor(p.Color)
	size := fallbackSize(p.Size)
	rounded := fallbackRounded(p.Rounded)

	ring := textFieldRing(color)
	if p.Error != "" {
		ring = "border-rose-500 focus:border-rose-500 focus:ring-rose-200"
	}

	return tokens.JoinClasses(
		"block w-full border bg-white transition-colors focus:outline-none focus:ring-2",
		"disabled:cursor-not-allowed disabled:bg-zinc-100 disabled:text-zinc-400",
		ring,
		textFieldSizeClasses(size),
		tokens.RoundedClass(rounded),
	)
}

func textFieldRing(color tokens.Color) string {
	switch color {
	case tokens.ColorPrimary:
		return "border-zinc-300 focus:border-blue-500 focus:ring-blue-200"
	case tokens.ColorSecondary:
		return "border-zinc-300 focus:border-purple-500 focus:ring-purple-200"
	case tokens.ColorSuccess:
		return "border-zinc-300 focus:border-emerald-500 focus:ring-emerald-200"
	case tokens.ColorWarning:
		return "border-zinc-300 focus:border-amber-500 focus:ring-amber-200"
	case tokens.ColorDanger:
		return "border-zinc-300 focus:border-rose-500 focus:ring-rose-200"
	case tokens.ColorInfo:
		return "border-zinc-300 focus:border-cyan-500 focus:ring-cyan-200"
	default:
		return "border-zinc-300 focus:border-zinc-500 focus:ring-zinc-200"
	}
}

func textFieldSizeClasses(size tokens.Size) string {
	switch size {
	case tokens.SizeXS:
		return "px-2.5 py-1 text-xs"
	case tokens.SizeSM:
		return "px-3 py-1.5 text-sm"
	case tokens.SizeLG:
		return "px-4 py-2.5 text-base"
	case tokens.SizeXL:
		return "px-5 py-3 text-lg"
	default:
		return "px-3.5 py-2 text-sm"
	}
}

type textFieldView struct {
	TextFieldProps
	InputType    string
	InputClasses string
	WrapClasses  string
	LabelClasses string
}

var textFieldTemplate = template.Must(template.New("textfield").Parse(
	`<div class="{{.WrapClasses}}">
{{- if and .Label (not .Floating)}}
<label for="{{.Name}}" class="{{.LabelClasses}}">{{.Label}}</label>
{{- end}}
{{- if .Floating}}
<div class="relative">
<input type="{{.InputType}}" id="{{.Name}}" name="{{.Name}}" class="{{.InputClasses}} peer placeholder-transparent" placeholder="{{.Label}}"{{if .Value}} value="{{.Value}}"{{end}}{{if .Disabled}} disabled{{end}}/>
<label for="{{.Name}}" class="pointer-events-none absolute left-3 top-0 -translate-y-1/2 bg-white px-1 text-xs text-zinc-500 transition-all peer-placeholder-shown:top-1/2 peer-placeholder-shown:text-sm peer-focus:top-0 peer-focus:text-xs">{{.Label}}</label>
</div>
{{- else}}
<input type="{{.InputType}}" id="{{.Name}}" name="{{.Name}}" class="{{.InputClasses}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .Value}} value="{{.Value}}"{{end}}{{if .Disabled}} disabled{{end}}/>
{{- end}}
{{- if .Error}}
<p class="text-xs text-rose-600">{{.Error}}</p>
{{- else if .Description}}
<p class="text-xs text-zinc-500">{{.Description}}</p>
{{- end}}
</div>`))

// TextField renders a labelled input control.
func TextField(p TextFieldProps) (string, error) {
	inputType := p.Type
	if inputType == "" {
		inputType = "text"
	}

	return renderTemplate("textfield", textFieldTemplate, textFieldView{
		TextFieldProps: p,
		InputType:      inputType,
		InputClasses:   p.Classes(),
		WrapClasses:    tokens.JoinClasses("flex flex-col gap-1.5", p.Class),
		LabelClasses:   "text-sm font-medium text-zinc-700",
	})
}
