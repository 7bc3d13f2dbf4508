// Package gallery assembles demo markup for every component in the
// library. The CLI uses it both for the static demo page and for the
// interactive preview.
package gallery

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lumeui/lume/components"
	"github.com/lumeui/lume/theme"
	"github.com/lumeui/lume/tokens"
)

// Section is one named component demo.
type Section struct {
	Name   string
	Render func() (string, error)
}

// Sections returns every component demo in display order.
func Sections() []Section {
	return []Section{
		{Name: "button", Render: buttonDemo},
		{Name: "pagination", Render: paginationDemo},
		{Name: "stepper", Render: stepperDemo},
		{Name: "textfield", Render: textFieldDemo},
		{Name: "fileupload", Render: fileUploadDemo},
		{Name: "video", Render: videoDemo},
		{Name: "progress", Render: progressDemo},
		{Name: "tabs", Render: tabsDemo},
	}
}

func buttonDemo() (string, error) {
	var parts []string
	for _, variant := range tokens.Variants() {
		html, err := components.Button(components.ButtonProps{
			Variant: variant,
			Color:   tokens.ColorPrimary,
		}, string(variant))
		if err != nil {
			return "", err
		}
		parts = append(parts, html)
	}

	circle, err := components.Button(components.ButtonProps{
		Circle: true,
		Color:  tokens.ColorDanger,
		Icon:   components.HTML("&#215;"),
	}, "")
	if err != nil {
		return "", err
	}
	parts = append(parts, circle)

	return wrapRow(parts), nil
}

func paginationDemo() (string, error) {
	props := components.DefaultPaginationProps()
	props.Total = 20
	props.Active = 10
	props.Siblings = 1
	props.Boundaries = 1
	props.ShowEdges = true
	props.Color = tokens.ColorPrimary
	props.Variant = tokens.VariantSubtle
	return components.Pagination(props)
}

func stepperDemo() (string, error) {
	return components.Stepper(components.StepperProps{
		Steps: []components.Step{
			{Label: "Account", Description: "Sign-in details"},
			{Label: "Billing"},
			{Label: "Confirm"},
		},
		Active: 2,
		Color:  tokens.ColorSuccess,
	})
}

func textFieldDemo() (string, error) {
	plain, err := components.TextField(components.TextFieldProps{
		Name:        "email",
		Label:       "Email address",
		Placeholder: "you@example.com",
		Description: "We never share it.",
		Color:       tokens.ColorPrimary,
	})
	if err != nil {
		return "", err
	}

	floating, err := components.TextField(components.TextFieldProps{
		Name:     "city",
		Label:    "City",
		Floating: true,
	})
	if err != nil {
		return "", err
	}

	errored, err := components.TextField(components.TextFieldProps{
		Name:  "username",
		Label: "Username",
		Error: "already taken",
	})
	if err != nil {
		return "", err
	}

	return wrapRow([]string{plain, floating, errored}), nil
}

func fileUploadDemo() (string, error) {
	return components.FileUpload(components.FileUploadProps{
		Name:        "attachments",
		Multiple:    true,
		Accept:      []string{"image/png", "image/jpeg"},
		MaxSizeHint: "PNG or JPEG, up to 10 MB",
		Color:       tokens.ColorPrimary,
	})
}

func videoDemo() (string, error) {
	return components.Video(components.VideoProps{
		Sources:  []components.VideoSource{{Src: "/media/demo.mp4", Type: "video/mp4"}},
		Poster:   "/media/poster.jpg",
		Controls: true,
		Ratio:    components.RatioVideo,
		Rounded:  tokens.RoundedLG,
	})
}

func progressDemo() (string, error) {
	var parts []string
	for _, props := range []components.ProgressProps{
		{Value: 35, Color: tokens.ColorPrimary, Indicator: components.IndicatorOutside},
		{Value: 70, Color: tokens.ColorSuccess, Striped: true, Animated: true},
		{Value: 100, Color: tokens.ColorInfo, Label: "done"},
	} {
		html, err := components.Progress(props)
		if err != nil {
			return "", err
		}
		parts = append(parts, html)
	}
	return strings.Join(parts, "\n"), nil
}

func tabsDemo() (string, error) {
	return components.Tabs(components.TabsProps{
		Items: []components.TabItem{
			{ID: "overview", Label: "Overview", Content: components.HTML("<p>Overview panel</p>")},
			{ID: "pricing", Label: "Pricing", Content: components.HTML("<p>Pricing panel</p>")},
			{ID: "faq", Label: "FAQ", Disabled: true},
		},
		ActiveID: "overview",
		Color:    tokens.ColorPrimary,
	})
}

func wrapRow(parts []string) string {
	return "<div class=\"flex flex-wrap items-start gap-4\">\n" + strings.Join(parts, "\n") + "\n</div>"
}

type pageView struct {
	Title   string
	Body    template.HTML
	Font    string
	Surface string
}

var pageTemplate = template.Must(template.New("page").Parse(
	`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>{{.Title}}</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="{{.Font}} {{.Surface}}">
<main class="mx-auto flex max-w-3xl flex-col gap-10 px-6 py-12">
{{.Body}}
</main>
</body>
</html>
`))

// Page renders the full demo page for the given theme.
func Page(th theme.Theme) (string, error) {
	var body strings.Builder
	for _, section := range Sections() {
		html, err := section.Render()
		if err != nil {
			return "", fmt.Errorf("section %s: %w", section.Name, err)
		}
		fmt.Fprintf(&body, "<section>\n<h2 class=\"mb-4 text-lg font-semibold capitalize\">%s</h2>\n%s\n</section>\n", section.Name, html)
	}

	return renderPage(pageView{
		Title:   fmt.Sprintf("lume gallery: %s", th.Name),
		Body:    template.HTML(body.String()),
		Font:    th.Font,
		Surface: th.Surface,
	})
}

func renderPage(view pageView) (string, error) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}
