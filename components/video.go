package components

import (
	"html/template"

	"github.com/lumeui/lume/tokens"
)

// VideoSource is one source entry of a video element.
type VideoSource struct {
	Src  string
	Type string
}

// VideoRatio selects the aspect-ratio treatment of the video frame.
type VideoRatio string

const (
	RatioAuto     VideoRatio = "auto"
	RatioVideo    VideoRatio = "video"
	RatioSquare   VideoRatio = "square"
	RatioPortrait VideoRatio = "portrait"
)

// VideoProps defines the configuration options for a video embed.
type VideoProps struct {
	Sources  []VideoSource
	Poster   string
	Controls bool
	Autoplay bool
	Muted    bool
	Loop     bool
	Ratio    VideoRatio
	Rounded  tokens.Rounded
	Class    string
}

// Classes computes the class string for the video element.
func (p VideoProps) Classes() string {
	return tokens.JoinClasses(
		"w-full object-cover",
		videoRatioClass(p.Ratio),
		tokens.RoundedClass(fallbackRounded(p.Rounded)),
		p.Class,
	)
}

func videoRatioClass(ratio VideoRatio) string {
	switch ratio {
	case RatioVideo:
		return "aspect-video"
	case RatioSquare:
		return "aspect-square"
	case RatioPortrait:
		return "aspect-[9/16]"
	default:
		return ""
	}
}

type videoView struct {
	VideoProps
	Classes string
}

var videoTemplate = template.Must(template.New("video").Parse(
	`<video class="{{.Classes}}"{{if .Poster}} poster="{{.Poster}}"{{end}}{{if .Controls}} controls{{end}}{{if .Autoplay}} autoplay{{end}}{{if .Muted}} muted{{end}}{{if .Loop}} loop{{end}}>
{{- range .Sources}}
<source src="{{.Src}}"{{if .Type}} type="{{.Type}}"{{end}}/>
{{- end}}
Your browser does not support the video tag.
</video>`))

// Video renders a video element with its source list.
func Video(p VideoProps) (string, error) {
	return renderTemplate("video", videoTemplate, videoView{
		VideoProps: p,
		Classes:    p.Classes(),
	})
}
