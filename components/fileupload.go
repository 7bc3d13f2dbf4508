package components

import (
	"html/template"
	"strings"

	"github.com/lumeui/lume/tokens"
)

// FileUploadProps defines the configuration options for a dropzone-style
// file input.
type FileUploadProps struct {
	Name     string
	Label    string
	Multiple bool
	// Accept lists the permitted MIME types or extensions, joined into
	// the accept attribute.
	Accept []string
	// MaxSizeHint is display-only copy under the label, e.g. "up to 10 MB".
	MaxSizeHint string
	Disabled    bool
	Color       tokens.Color
	Rounded     tokens.Rounded
	Class       string
}

// Classes computes the class string for the dropzone surface.
func (p FileUploadProps) Classes() string {
	color := fallbackColor(p.Color)
	rounded := fallbackRounded(p.Rounded)

	accent, _ := tokens.StyleFor(tokens.VariantSubtle, color)

	return tokens.JoinClasses(
		"flex cursor-pointer flex-col items-center justify-center gap-2 border-2 border-dashed border-zinc-300 px-6 py-10 text-center transition-colors",
		accent,
		tokens.RoundedClass(rounded),
		p.disabledClasses(),
	)
}

func (p FileUploadProps) disabledClasses() string {
	if p.Disabled {
		return "cursor-not-allowed opacity-50"
	}
	return ""
}

type fileUploadView struct {
	FileUploadProps
	ZoneClasses string
	AcceptAttr  string
}

var fileUploadTemplate = template.Must(template.New("fileupload").Parse(
	`<label class="{{.ZoneClasses}}"{{if .Name}} for="{{.Name}}"{{end}}>
<input type="file" id="{{.Name}}" name="{{.Name}}" class="sr-only"{{if .Multiple}} multiple{{end}}{{if .AcceptAttr}} accept="{{.AcceptAttr}}"{{end}}{{if .Disabled}} disabled{{end}}/>
<span class="text-sm font-medium">{{if .Label}}{{.Label}}{{else}}Drop files here or click to browse{{end}}</span>
{{- if .MaxSizeHint}}
<span class="text-xs text-zinc-500">{{.MaxSizeHint}}</span>
{{- end}}
</label>`))

// FileUpload renders a dropzone wrapping a visually hidden file input.
func FileUpload(p FileUploadProps) (string, error) {
	return renderTemplate("fileupload", fileUploadTemplate, fileUploadView{
		FileUploadProps: p,
		ZoneClasses:     tokens.JoinClasses(p.Classes(), p.Class),
		AcceptAttr:      strings.Join(p.Accept, ","),
	})
}
