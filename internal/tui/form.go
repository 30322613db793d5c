package tui

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/Andryss/ToDoOps/internal/domain"
	"github.com/Andryss/ToDoOps/internal/format"
	"github.com/Andryss/ToDoOps/internal/validate"
)

// create-form field indexes in display/update order.
const (
	formFieldTitle = iota
	formFieldDescription
	formFieldDue
)

// formFieldLabels stores create-form field labels in display order.
var formFieldLabels = []string{"title", "description", "due"}

// createForm holds the new-task draft. The draft survives remote failures so
// the user can retry without retyping.
type createForm struct {
	inputs []textinput.Model
	focus  int
	saving bool
	errMsg string
}

// newModalInput constructs one focusable modal text input.
func newModalInput(placeholder, value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	if value != "" {
		in.SetValue(value)
	}
	return in
}

// startCreateForm opens the create modal with an empty draft.
func (m *Model) startCreateForm() tea.Cmd {
	m.mode = modeCreate
	m.form = createForm{
		inputs: []textinput.Model{
			newModalInput("task title (required)", "", validate.TitleMaxLength),
			newModalInput("what needs to happen (required)", "", validate.DescriptionMaxLength),
			newModalInput("YYYY-MM-DDTHH:MM (optional)", "", 32),
		},
	}
	m.status = "new task"
	return m.focusFormField(&m.form, 0)
}

// focusFormField moves form focus to one field index.
func (m *Model) focusFormField(f *createForm, idx int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	idx = clamp(idx, 0, len(f.inputs)-1)
	f.focus = idx
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f.inputs[idx].Focus()
}

// handleCreateFormKey handles create-modal keys.
func (m Model) handleCreateFormKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		// Inputs and actions stay disabled while the create request is in
		// flight.
		return m, nil
	}

	switch {
	case msg.Code == tea.KeyEscape || msg.String() == "esc":
		m.mode = modeNone
		m.form = createForm{}
		m.status = "cancelled"
		return m, nil

	case msg.Code == tea.KeyTab || msg.String() == "tab" || msg.String() == "down":
		return m, m.focusFormField(&m.form, m.form.focus+1)

	case msg.String() == "shift+tab" || msg.String() == "backtab" || msg.String() == "up":
		return m, m.focusFormField(&m.form, m.form.focus-1)

	case msg.Code == tea.KeyEnter || msg.String() == "enter":
		return m.submitCreateForm()

	default:
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
}

// submitCreateForm validates the draft and issues the create request.
// Validation failures never reach the network.
func (m Model) submitCreateForm() (tea.Model, tea.Cmd) {
	title := m.form.inputs[formFieldTitle].Value()
	description := m.form.inputs[formFieldDescription].Value()

	m.form.errMsg = ""
	if msg := validate.TaskForm(title, description); msg != "" {
		m.form.errMsg = msg
		return m, nil
	}
	due, err := format.ParseDueEdit(m.form.inputs[formFieldDue].Value())
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	in := domain.TaskInput{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		DueDate:     due,
	}
	m.form.saving = true
	m.status = "creating task..."
	svc := m.svc
	return m, func() tea.Msg {
		if _, err := svc.CreateTask(context.Background(), in); err != nil {
			return taskCreatedMsg{err: err}
		}
		return taskCreatedMsg{}
	}
}
