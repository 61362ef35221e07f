package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// IdeaQuestion is asked when creative mode starts without an idea.
const IdeaQuestion = "What's your creative idea?"

// ErrPromptCancelled is returned when the user aborts the prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptModel is a one-line bubbletea prompt.
type PromptModel struct {
	input     textinput.Model
	question  string
	styles    Styles
	submitted bool
	cancelled bool
}

// NewPromptModel creates a focused prompt for question.
func NewPromptModel(question string, styles Styles) PromptModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. demo video for enterprise VPs"
	ti.Prompt = "│ "
	ti.CharLimit = 512
	ti.Width = 72
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.Body
	ti.Focus()
	return PromptModel{input: ti, question: question, styles: styles}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.styles.Prompt.Render(m.question) + "\n" + m.input.View() + "\n" +
		m.styles.Muted.Render("(Enter to continue, Esc to cancel)") + "\n"
}

// Value returns the trimmed answer.
func (m PromptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Cancelled reports whether the user aborted.
func (m PromptModel) Cancelled() bool {
	return m.cancelled
}

// AskIdea runs the interactive prompt on a terminal.
func AskIdea(in io.Reader, out io.Writer, styles Styles) (string, error) {
	p := tea.NewProgram(NewPromptModel(IdeaQuestion, styles), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run prompt: %w", err)
	}
	m, ok := final.(PromptModel)
	if !ok || m.Cancelled() {
		return "", ErrPromptCancelled
	}
	return m.Value(), nil
}

// ReadIdea asks the question on out and reads one line from in. Used when
// input is piped rather than a terminal.
func ReadIdea(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, IdeaQuestion+" ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read idea: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrPromptCancelled
	}
	return strings.TrimSpace(line), nil
}
