package report

import (
	"fmt"
	"strings"

	"pagelens/pkg/detector"
	"pagelens/pkg/page"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
)

type model struct {
	target   string
	result   detector.Result
	assets   page.Assets
	quitting bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Page Analysis Results"))
	s.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(64)

	var content strings.Builder
	content.WriteString(focusedStyle.Render("Page: "))
	content.WriteString(selectedItemStyle.Render(m.target))
	content.WriteString("\n\n")

	writeFamily(&content, "JS frameworks:", m.result.JSFrameworks)
	content.WriteString("\n")
	writeFamily(&content, "CSS frameworks:", m.result.CSSFrameworks)

	content.WriteString("\n")
	content.WriteString(focusedStyle.Render("Loaded files: "))
	content.WriteString(descriptionStyle.Render(fmt.Sprintf("%d scripts, %d stylesheets", len(m.assets.Scripts), len(m.assets.Stylesheets))))
	content.WriteString("\n")

	s.WriteString(box.Render(content.String()))
	s.WriteString("\n\n")

	s.WriteString(helpStyle.Render("Press "))
	s.WriteString(focusedStyle.Render("enter"))
	s.WriteString(helpStyle.Render(" or "))
	s.WriteString(focusedStyle.Render("q"))
	s.WriteString(helpStyle.Render(" to exit"))

	return s.String()
}

func writeFamily(b *strings.Builder, heading string, names []string) {
	b.WriteString(focusedStyle.Render(heading))
	b.WriteString("\n")
	for _, name := range names {
		if name == detector.NoneDetected {
			b.WriteString(mutedStyle.Render("  — " + name))
			b.WriteString("\n")
			continue
		}
		b.WriteString(successStyle.Render("  ✓ "))
		b.WriteString(descriptionStyle.Render(name))
		b.WriteString("\n")
	}
}

// Show renders the analysis results full-screen and waits for a key.
func Show(target string, result detector.Result, assets page.Assets) error {
	m := model{
		target: target,
		result: result,
		assets: assets,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error showing analysis results: %w", err)
	}
	return nil
}
