package components

import (
	"fmt"
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// IndicatorPosition selects where the value label of a progress bar is
// rendered.
type IndicatorPosition string

const (
	IndicatorNone    IndicatorPosition = "none"
	IndicatorInside  IndicatorPosition = "inside"
	IndicatorOutside IndicatorPosition = "outside"
)

// ProgressProps defines the configuration options for a progress bar.
// Value is clamped into [0, 100] before rendering.
type ProgressProps struct {
	Value     int
	Color     tokens.Color
	Size      tokens.Size
	Rounded   tokens.Rounded
	Striped   bool
	Animated  bool
	Label     string
	Indicator IndicatorPosition
	Class     string
}

// ClampedValue returns Value confined to [0, 100].
func (p ProgressProps) ClampedValue() int {
	if p.Value < 0 {
		return 0
	}
	if p.Value > 100 {
		return 100
	}
	return p.Value
}

// TrackClasses computes the class string for the outer track.
func (p ProgressProps) TrackClasses() string {
	return tokens.JoinClasses(
		"w-full overflow-hidden bg-zinc-200",
		progressSizeClasses(fallbackSize(p.Size)),
		tokens.RoundedClass(fallbackRounded(p.Rounded)),
		p.Class,
	)
}

// BarClasses computes the class string for the filled bar.
func (p ProgressProps) BarClasses() string {
	solid, _ := tokens.StyleFor(tokens.VariantDefault, fallbackColor(p.Color))

	striped := ""
	if p.Striped {
		striped = "bg-[linear-gradient(45deg,rgba(255,255,255,.15)_25%,transparent_25%,transparent_50%,rgba(255,255,255,.15)_50%,rgba(255,255,255,.15)_75%,transparent_75%,transparent)] bg-[length:1rem_1rem]"
		if p.Animated {
			striped = tokens.JoinClasses(striped, "animate-[progress-stripes_1s_linear_infinite]")
		}
	}

	return tokens.JoinClasses(
		"flex h-full items-center justify-center text-xs text-white transition-[width]",
		solid,
		striped,
	)
}

type progressView struct {
	ProgressProps
	Value        int
	TrackClasses string
	BarClasses   string
	Width        string
}

var progressTemplate = template.Must(template.New("progress").Parse(
	`<div class="flex items-center gap-2">
<div class="{{.TrackClasses}}" role="progressbar" aria-valuenow="{{.Value}}" aria-valuemin="0" aria-valuemax="100">
<div class="{{.BarClasses}}" style="width: {{.Width}}">{{if eq .Indicator "inside"}}{{.Value}}%{{end}}</div>
</div>
{{- if eq .Indicator "outside"}}
<span class="shrink-0 text-sm tabular-nums text-zinc-600">{{.Value}}%</span>
{{- end}}
{{- if .Label}}
<span class="shrink-0 text-sm text-zinc-600">{{.Label}}</span>
{{- end}}
</div>`))

// Progress renders a determinate progress bar.
func Progress(p ProgressProps) (string, error) {
	value := p.ClampedValue()
	return renderTemplate("progress", progressTemplate, progressView{
		ProgressProps: p,
		Value:         value,
		TrackClasses:  p.TrackClasses(),
		BarClasses:    p.BarClasses(),
		Width:         fmt.Sprintf("%d%%", value),
	})
}

func progressSizeClasses(size tokens.Size) string {
	switch size {
	case tokens.SizeXS:
		return "h-1"
	case tokens.SizeSM:
		return "h-2"
	case tokens.SizeLG:
		return "h-4"
	case tokens.SizeXL:
		return "h-5"
	default:
		return "h-3"
	}
}
