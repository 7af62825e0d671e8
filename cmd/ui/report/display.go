package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"siteplan/pkg/export"
	"siteplan/pkg/resolver"
)

var (
	titleStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#01FAC6")).Foreground(lipgloss.Color("#030303")).Bold(true).Padding(0, 1, 0)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)
	valueStyle       = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40BDA3"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnMarkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	infoMarkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	passStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type model struct {
	viewport viewport.Model
	content  string
	ready    bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc", "enter":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	footer := helpStyle.Render("↑/↓ scroll · q quit")
	return m.viewport.View() + "\n" + footer
}

// Show renders the resolved plan and its diagnostic report in an
// interactive scrollable view.
func Show(plan resolver.Plan, serialized export.SerializedPlan) error {
	m := model{content: renderContent(plan, serialized)}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error showing plan report: %w", err)
	}
	return nil
}

func renderContent(plan resolver.Plan, serialized export.SerializedPlan) string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Deployment Plan"))
	s.WriteString("\n\n")

	planBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#01FAC6")).
		Padding(1, 2).
		Width(64)

	var content strings.Builder
	writeField := func(label, value string) {
		if value == "" {
			return
		}
		content.WriteString(labelStyle.Render(label + ":"))
		content.WriteString(valueStyle.Render(value))
		content.WriteString("\n")
	}

	writeField("Package manager", string(plan.PackageManager))
	writeField("Install", plan.InstallCommand)
	writeField("Build", plan.BuildCommand)
	writeField("Cache key", plan.CacheKey)
	writeField("Cache paths", strings.Join(plan.CachePaths, ", "))
	writeField("Setup steps", strings.Join(plan.SetupSteps, ", "))
	writeField("Output directory", plan.OutputDirGuess)
	writeField("Framework", plan.FrameworkHint)
	writeField("Confidence", string(plan.Confidence))

	s.WriteString(planBox.Render(content.String()))
	s.WriteString("\n\n")

	s.WriteString(titleStyle.Render("Checklist"))
	s.WriteString("\n\n")
	writeDiagnostics(&s, serialized.Report)

	errors, warnings := serialized.Report.Counts()
	s.WriteString(fmt.Sprintf("\n%d error(s), %d warning(s) — ", errors, warnings))
	if serialized.Report.Pass {
		s.WriteString(passStyle.Render("PASS"))
	} else {
		s.WriteString(failStyle.Render("FAIL"))
	}
	s.WriteString("\n")

	return s.String()
}

func writeDiagnostics(s *strings.Builder, rep export.Report) {
	if len(rep.Diagnostics) == 0 {
		s.WriteString(descriptionStyle.Render("  all checks passed"))
		s.WriteString("\n")
		return
	}

	marks := map[resolver.Severity]string{
		resolver.SeverityError:   errorMarkStyle.Render("  ✗ "),
		resolver.SeverityWarning: warnMarkStyle.Render("  ! "),
		resolver.SeverityInfo:    infoMarkStyle.Render("  i "),
	}

	for _, sev := range []resolver.Severity{resolver.SeverityError, resolver.SeverityWarning, resolver.SeverityInfo} {
		for _, d := range rep.Severities(sev) {
			s.WriteString(marks[sev])
			s.WriteString(descriptionStyle.Render(fmt.Sprintf("[%s] %s", d.Code, d.Message)))
			s.WriteString("\n")
		}
	}
}
