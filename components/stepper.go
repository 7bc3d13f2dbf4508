package components

import (
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// StepState describes where one step sits relative to the active step.
type StepState string

const (
	StepPending  StepState = "pending"
	StepCurrent  StepState = "current"
	StepComplete StepState = "complete"
)

// Step is one entry in a stepper.
type Step struct {
	Label       string
	Description string
	Icon        HTML
}

// StepperProps defines the configuration options for a stepper. Active is
// the 1-based index of the step in progress; values before the first step
// leave every step pending, values past the last mark every step complete.
type StepperProps struct {
	Steps    []Step
	Active   int
	Color    tokens.Color
	Size     tokens.Size
	Vertical bool
	Class    string
}

// StateOf derives the state of the 1-based step index from Active.
func (p StepperProps) StateOf(index int) StepState {
	switch {
	case index < p.Active:
		return StepComplete
	case index == p.Active:
		return StepCurrent
	default:
		return StepPending
	}
}

// States derives the state of every step in order.
func (p StepperProps) States() []StepState {
	states := make([]StepState, len(p.Steps))
	for i := range p.Steps {
		states[i] = p.StateOf(i + 1)
	}
	return states
}

type stepperItem struct {
	Index          int
	Label          string
	Description    string
	Icon           HTML
	State          StepState
	MarkerClasses  string
	LabelClasses   string
	ConnectorShown bool
	Connector      string
}

type stepperView struct {
	Classes string
	Items   []stepperItem
}

var stepperTemplate = template.Must(template.New("stepper").Parse(
	`<ol class="{{.Classes}}">
{{- range .Items}}
<li class="flex items-center gap-2" data-state="{{.State}}">
<span class="{{.MarkerClasses}}">{{if .Icon}}{{.Icon}}{{else if eq .State "complete"}}&#10003;{{else}}{{.Index}}{{end}}</span>
<span class="{{.LabelClasses}}">{{.Label}}{{if .Description}}<span class="block text-xs text-zinc-500">{{.Description}}</span>{{end}}</span>
{{- if .ConnectorShown}}
<span class="{{.Connector}}" aria-hidden="true"></span>
{{- end}}
</li>
{{- end}}
</ol>`))

// Stepper renders an ordered progress indicator. Completed steps show a
// check mark, the current step is highlighted, and the remaining steps
// stay muted.
func Stepper(p StepperProps) (string, error) {
	color := fallbackColor(p.Color)
	size := fallbackSize(p.Size)

	solid, _ := tokens.StyleFor(tokens.VariantDefault, color)
	outline, _ := tokens.StyleFor(tokens.VariantOutline, color)

	markerBase := tokens.JoinClasses(
		"inline-flex shrink-0 items-center justify-center rounded-full font-medium",
		stepperMarkerSize(size),
	)

	direction := "flex flex-row items-center gap-4"
	connector := "h-px w-8 bg-zinc-300"
	if p.Vertical {
		direction = "flex flex-col items-start gap-4"
		connector = "hidden"
	}

	items := make([]stepperItem, 0, len(p.Steps))
	for i, step := range p.Steps {
		index := i + 1
		state := p.StateOf(index)

		marker := tokens.JoinClasses(markerBase, "border border-zinc-300 text-zinc-400")
		label := "text-zinc-400"
		switch state {
		case StepComplete:
			marker = tokens.JoinClasses(markerBase, solid)
			label = "text-zinc-700"
		case StepCurrent:
			marker = tokens.JoinClasses(markerBase, outline, "ring-2 ring-offset-1")
			label = "font-medium text-zinc-900"
		}

		items = append(items, stepperItem{
			Index:          index,
			Label:          step.Label,
			Description:    step.Description,
			Icon:           step.Icon,
			State:          state,
			MarkerClasses:  marker,
			LabelClasses:   tokens.JoinClasses(label, stepperLabelSize(size)),
			ConnectorShown: !p.Vertical && index < len(p.Steps),
			Connector:      connector,
		})
	}

	return renderTemplate("stepper", stepperTemplate, stepperView{
		Classes: tokens.JoinClasses(direction, p.Class),
		Items:   items,
	})
}

func stepperMarkerSize(size tokens.Size) string {
	switch size {
	case tokens.SizeXS:
		return "h-6 w-6 text-xs"
	case tokens.SizeSM:
		return "h-7 w-7 text-xs"
	case tokens.SizeLG:
		return "h-9 w-9 text-base"
	case tokens.SizeXL:
		return "h-10 w-10 text-lg"
	default:
		return "h-8 w-8 text-sm"
	}
}

func stepperLabelSize(size tokens.Size) string {
	switch size {
	case tokens.SizeXS, tokens.SizeSM:
		return "text-sm"
	case tokens.SizeLG, tokens.SizeXL:
		return "text-base"
	default:
		return "text-sm"
	}
}
