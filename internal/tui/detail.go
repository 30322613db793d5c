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

// detailPhase identifies where an open detail view is in its lifecycle.
// Confirmation and in-flight phases ignore every key except the ones that
// resolve them.
type detailPhase int

const (
	detailLoading detailPhase = iota
	detailLoadFailed
	detailEditing
	detailConfirmingDiscard
	detailConfirmingDelete
	detailSaving
	detailDeleting
)

// detail-form field indexes; the status selector sits after the text inputs.
const (
	detailFieldTitle = iota
	detailFieldDescription
	detailFieldDue
	detailFieldStatus
)

// detailDraft captures the editable fields as the user last saw them, used
// both as the edit baseline and for dirty detection.
type detailDraft struct {
	title       string
	description string
	due         string
	status      domain.Status
}

// detailView holds one open task's edit state.
type detailView struct {
	taskID int64
	seq    int
	phase  detailPhase

	loadErr string
	task    domain.Task

	inputs        []textinput.Model
	focus         int
	statusIdx     int
	statusOptions []domain.Status
	baseline      detailDraft

	formErr       string
	confirmChoice int
}

// openDetail opens the detail view for a task and begins fetching it. Any
// previous detail request is superseded.
func (m *Model) openDetail(id int64) tea.Cmd {
	m.detailSeq++
	m.mode = modeDetail
	m.detail = &detailView{
		taskID: id,
		seq:    m.detailSeq,
		phase:  detailLoading,
	}
	m.status = "loading task..."
	svc := m.svc
	seq := m.detailSeq
	return func() tea.Msg {
		task, err := svc.GetTask(context.Background(), id)
		if err != nil {
			return detailLoadedMsg{seq: seq, err: err}
		}
		return detailLoadedMsg{seq: seq, task: task}
	}
}

// closeDetail drops the open detail view and returns to the list.
func (m *Model) closeDetail() {
	m.detail = nil
	m.mode = modeNone
}

// handleLoaded seeds the edit form from a fetched task.
func (d *detailView) handleLoaded(msg detailLoadedMsg) tea.Cmd {
	if msg.err != nil {
		d.phase = detailLoadFailed
		d.loadErr = msg.err.Error()
		return nil
	}
	d.task = msg.task
	d.baseline = detailDraft{
		title:       msg.task.Title,
		description: msg.task.Description,
		due:         format.DueEditValue(msg.task.DueDate),
		status:      msg.task.Status,
	}
	d.inputs = []textinput.Model{
		newModalInput("task title (required)", d.baseline.title, validate.TitleMaxLength),
		newModalInput("what needs to happen (required)", d.baseline.description, validate.DescriptionMaxLength),
		newModalInput("YYYY-MM-DDTHH:MM (optional)", d.baseline.due, 32),
	}
	d.statusOptions = domain.StatusOptions(msg.task.Status)
	d.statusIdx = 0
	d.phase = detailEditing
	return d.setFocus(0)
}

// setFocus moves detail focus across the text inputs and the status selector.
func (d *detailView) setFocus(idx int) tea.Cmd {
	d.focus = clamp(idx, 0, detailFieldStatus)
	for i := range d.inputs {
		d.inputs[i].Blur()
	}
	if d.focus < len(d.inputs) {
		return d.inputs[d.focus].Focus()
	}
	return nil
}

// draft returns the form fields as currently typed.
func (d *detailView) draft() detailDraft {
	return detailDraft{
		title:       d.inputs[detailFieldTitle].Value(),
		description: d.inputs[detailFieldDescription].Value(),
		due:         d.inputs[detailFieldDue].Value(),
		status:      d.statusOptions[d.statusIdx],
	}
}

// isDirty reports whether any editable field differs from the loaded task.
func (d *detailView) isDirty() bool {
	if d.phase == detailLoading || d.phase == detailLoadFailed {
		return false
	}
	return d.draft() != d.baseline
}

// handleDetailKey handles detail-view keys for whichever phase is active.
func (m Model) handleDetailKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	if d == nil {
		m.mode = modeNone
		return m, nil
	}

	switch d.phase {
	case detailSaving, detailDeleting:
		// Requests in flight; nothing to press.
		return m, nil

	case detailLoading:
		if msg.Code == tea.KeyEscape || msg.String() == "esc" {
			m.closeDetail()
			m.status = "cancelled"
		}
		return m, nil

	case detailLoadFailed:
		switch msg.String() {
		case "esc", "q":
			m.closeDetail()
			m.status = "ready"
		case "r", "enter":
			return m, m.openDetail(d.taskID)
		}
		return m, nil

	case detailConfirmingDiscard:
		return m.handleConfirmKey(msg, d, func(m *Model) tea.Cmd {
			m.closeDetail()
			m.status = "changes discarded"
			return nil
		})

	case detailConfirmingDelete:
		return m.handleConfirmKey(msg, d, func(m *Model) tea.Cmd {
			return m.startDelete(d)
		})

	default:
		return m.handleDetailEditKey(msg, d)
	}
}

// handleConfirmKey drives the two-option confirmation boxes. Choice 0 is
// always the safe option; accept runs only on an explicit confirm.
func (m Model) handleConfirmKey(msg tea.KeyPressMsg, d *detailView, accept func(*Model) tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		d.phase = detailEditing
		d.confirmChoice = 0
		return m, nil
	case "left", "h", "right", "l", "tab":
		d.confirmChoice = 1 - d.confirmChoice
		return m, nil
	case "y":
		return m, accept(&m)
	case "enter":
		if d.confirmChoice == 1 {
			return m, accept(&m)
		}
		d.phase = detailEditing
		d.confirmChoice = 0
		return m, nil
	default:
		return m, nil
	}
}

// handleDetailEditKey handles keys while the task form is editable.
func (m Model) handleDetailEditKey(msg tea.KeyPressMsg, d *detailView) (tea.Model, tea.Cmd) {
	switch {
	case msg.Code == tea.KeyEscape || msg.String() == "esc":
		if d.isDirty() {
			d.phase = detailConfirmingDiscard
			d.confirmChoice = 0
			return m, nil
		}
		m.closeDetail()
		m.status = "ready"
		return m, nil

	case msg.String() == "ctrl+d":
		d.phase = detailConfirmingDelete
		d.confirmChoice = 0
		return m, nil

	case msg.Code == tea.KeyTab || msg.String() == "tab" || msg.String() == "down":
		return m, d.setFocus(wrapIndex(d.focus+1, detailFieldStatus+1))

	case msg.String() == "shift+tab" || msg.String() == "backtab" || msg.String() == "up":
		return m, d.setFocus(wrapIndex(d.focus-1, detailFieldStatus+1))

	case msg.Code == tea.KeyEnter || msg.String() == "enter":
		return m.startSave(d)
	}

	if d.focus == detailFieldStatus {
		switch msg.String() {
		case "left", "h":
			d.statusIdx = wrapIndex(d.statusIdx-1, len(d.statusOptions))
		case "right", "l", " ":
			d.statusIdx = wrapIndex(d.statusIdx+1, len(d.statusOptions))
		}
		return m, nil
	}

	var cmd tea.Cmd
	d.inputs[d.focus], cmd = d.inputs[d.focus].Update(msg)
	return m, cmd
}

// startSave validates the draft and issues the save requests. The update
// always runs; the status change follows only when the status moved, so an
// unchanged status never touches the transition endpoint.
func (m Model) startSave(d *detailView) (tea.Model, tea.Cmd) {
	draft := d.draft()

	d.formErr = ""
	if msg := validate.TaskForm(draft.title, draft.description); msg != "" {
		d.formErr = msg
		return m, nil
	}
	due, err := format.ParseDueEdit(draft.due)
	if err != nil {
		d.formErr = err.Error()
		return m, nil
	}

	in := domain.TaskInput{
		Title:       strings.TrimSpace(draft.title),
		Description: strings.TrimSpace(draft.description),
		DueDate:     due,
	}
	d.phase = detailSaving
	m.status = "saving task..."

	svc := m.svc
	seq := d.seq
	id := d.taskID
	newStatus := draft.status
	changeStatus := draft.status != d.baseline.status
	return m, func() tea.Msg {
		if _, err := svc.UpdateTask(context.Background(), id, in); err != nil {
			return detailSavedMsg{seq: seq, err: err}
		}
		if changeStatus {
			if _, err := svc.ChangeTaskStatus(context.Background(), id, newStatus); err != nil {
				return detailSavedMsg{seq: seq, err: err}
			}
		}
		return detailSavedMsg{seq: seq}
	}
}

// startDelete issues the delete request after it has been confirmed.
func (m *Model) startDelete(d *detailView) tea.Cmd {
	d.phase = detailDeleting
	m.status = "deleting task..."

	svc := m.svc
	seq := d.seq
	id := d.taskID
	return func() tea.Msg {
		if err := svc.DeleteTask(context.Background(), id); err != nil {
			return detailDeletedMsg{seq: seq, err: err}
		}
		return detailDeletedMsg{seq: seq}
	}
}

// wrapIndex wraps idx into [0, n).
func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
