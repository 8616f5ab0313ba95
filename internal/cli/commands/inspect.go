package commands

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/lexer"
	"github.com/dj-lumiere/razorforge-lang-sub007/pkg/token"
)

// NewInspectCommand creates the inspect command: a split-pane terminal UI
// with a source editor on the left and a live token list on the right,
// re-tokenizing on every keystroke.
func NewInspectCommand() *cobra.Command {
	var dialectFlag string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Open an interactive editor that shows live token output",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dialect, err := resolveDialect(cmd.Context(), dialectFlag)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newInspectModel(dialect), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "dialect to tokenize with (b|i)")
	return cmd
}

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type inspectModel struct {
	editor  textarea.Model
	dialect lexer.Dialect
	tokens  []token.Token
	lexErr  error
	width   int
	height  int
}

func newInspectModel(dialect lexer.Dialect) inspectModel {
	ta := textarea.New()
	ta.Placeholder = "type source here..."
	ta.Focus()
	ta.ShowLineNumbers = true
	return inspectModel{editor: ta, dialect: dialect}
}

func (m inspectModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlD:
			m.dialect = toggleDialect(m.dialect)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width/2 - 4)
		m.editor.SetHeight(msg.Height - 4)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.tokens, m.lexErr = lexer.Tokenize(m.editor.Value(), m.dialect)
	return m, cmd
}

func (m inspectModel) View() string {
	left := paneStyle.Width(m.width/2 - 2).Height(m.height - 2).Render(m.editor.View())
	right := paneStyle.Width(m.width/2 - 2).Height(m.height - 2).Render(m.renderTokens())
	help := dimStyle.Render(fmt.Sprintf("dialect: %s  (ctrl+d toggle, esc to quit)", m.dialect))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right) + "\n" + help
}

func (m inspectModel) renderTokens() string {
	if m.lexErr != nil {
		return errStyle.Render(m.lexErr.Error())
	}
	out := ""
	for _, tok := range m.tokens {
		out += fmt.Sprintf("%-14s %q\n", tok.Kind.String(), tok.Text)
	}
	return out
}

func toggleDialect(d lexer.Dialect) lexer.Dialect {
	if d == lexer.DialectB {
		return lexer.DialectI
	}
	return lexer.DialectB
}
