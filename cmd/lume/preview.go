package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lumeui/lume/internal/gallery"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse component markup in an interactive terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}
			log = log.WithComponent("preview")

			sections := gallery.Sections()
			log.Debug("starting preview", "sections", len(sections))

			program := tea.NewProgram(newPreviewModel(sections), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				log.Error(err, "preview session failed")
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}

	return cmd
}

type sectionItem struct {
	name string
}

func (i sectionItem) Title() string       { return i.name }
func (i sectionItem) Description() string { return "component demo" }
func (i sectionItem) FilterValue() string { return i.name }

type previewModel struct {
	list     list.Model
	viewport viewport.Model
	sections []gallery.Section
	ready    bool
}

var (
	previewListStyle = lipgloss.NewStyle().MarginRight(2)
	previewPaneStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1)
)

func newPreviewModel(sections []gallery.Section) previewModel {
	items := make([]list.Item, 0, len(sections))
	for _, section := range sections {
		items = append(items, sectionItem{name: section.Name})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "lume components"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return previewModel{list: l, sections: sections}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		listWidth := msg.Width / 3
		m.list.SetSize(listWidth, msg.Height-2)
		m.viewport = viewport.New(msg.Width-listWidth-6, msg.Height-4)
		m.ready = true
		m.refreshContent()
	}

	var listCmd tea.Cmd
	m.list, listCmd = m.list.Update(msg)
	if m.ready {
		m.refreshContent()
	}

	var viewportCmd tea.Cmd
	m.viewport, viewportCmd = m.viewport.Update(msg)

	return m, tea.Batch(listCmd, viewportCmd)
}

func (m *previewModel) refreshContent() {
	index := m.list.Index()
	if index < 0 || index >= len(m.sections) {
		m.viewport.SetContent("")
		return
	}

	html, err := m.sections[index].Render()
	if err != nil {
		m.viewport.SetContent(fmt.Sprintf("render failed: %v", err))
		return
	}
	m.viewport.SetContent(html)
}

func (m previewModel) View() string {
	if !m.ready {
		return "loading..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		previewListStyle.Render(m.list.View()),
		previewPaneStyle.Render(m.viewport.View()),
	)
}
