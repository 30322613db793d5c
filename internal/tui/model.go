package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/Andryss/ToDoOps/internal/domain"
)

// Service represents the remote task operations this package consumes.
type Service interface {
	ListTasks(ctx context.Context, page, size int) (domain.TaskPage, error)
	GetTask(ctx context.Context, id int64) (domain.Task, error)
	CreateTask(ctx context.Context, in domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id int64, in domain.TaskInput) (domain.Task, error)
	ChangeTaskStatus(ctx context.Context, id int64, status domain.Status) (domain.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// inputMode identifies which modal surface is open. The create form and the
// task detail view are mutually exclusive by construction.
type inputMode int

const (
	modeNone inputMode = iota
	modeCreate
	modeDetail
)

// pageLoadedMsg carries one requested list page through update handling.
// requested keeps the index that was asked for so a failure can be reported
// without moving the confirmed page index.
type pageLoadedMsg struct {
	seq       int
	requested int
	page      domain.TaskPage
	err       error
}

// taskCreatedMsg carries the create-form submission result.
type taskCreatedMsg struct {
	err error
}

// detailLoadedMsg carries one fetched task into an open detail view.
type detailLoadedMsg struct {
	seq  int
	task domain.Task
	err  error
}

// detailSavedMsg carries the save result (update plus optional status change).
type detailSavedMsg struct {
	seq int
	err error
}

// detailDeletedMsg carries the confirmed delete result.
type detailDeletedMsg struct {
	seq int
	err error
}

// Model represents model data used by this package.
type Model struct {
	svc Service

	ready  bool
	width  int
	height int

	status string

	help help.Model
	keys keyMap

	pageSize int
	page     int
	pageData *domain.TaskPage
	loading  bool
	listErr  string
	cursor   int
	loadSeq  int

	mode      inputMode
	form      createForm
	detail    *detailView
	detailSeq int

	md *descriptionRenderer

	copyToClipboard func(string) error
}

// NewModel constructs a new value for this package.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	m := Model{
		svc:             svc,
		status:          "loading...",
		help:            h,
		keys:            newKeyMap(),
		pageSize:        DefaultPageSize,
		loading:         true,
		md:              &descriptionRenderer{},
		copyToClipboard: defaultClipboardWriter,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return m.loadPageCmd(m.loadSeq, 0)
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case pageLoadedMsg:
		if msg.seq != m.loadSeq {
			// Result of a superseded load; a newer request owns the list now.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.listErr = msg.err.Error()
			m.status = "load failed"
			return m, nil
		}
		m.listErr = ""
		m.pageData = &msg.page
		m.page = msg.page.Number
		m.cursor = clamp(m.cursor, 0, len(msg.page.Content)-1)
		if m.status == "" || m.status == "loading..." {
			m.status = "ready"
		}
		return m, nil

	case taskCreatedMsg:
		if m.mode != modeCreate {
			return m, nil
		}
		if msg.err != nil {
			m.form.saving = false
			m.form.errMsg = msg.err.Error()
			return m, nil
		}
		m.mode = modeNone
		m.form = createForm{}
		m.status = "task created"
		// A fresh task sorts onto the first page; jump there regardless of
		// where the user was.
		return m, m.startLoadPage(0)

	case detailLoadedMsg:
		if m.detail == nil || m.detail.seq != msg.seq {
			return m, nil
		}
		return m, m.detail.handleLoaded(msg)

	case detailSavedMsg:
		if m.detail == nil || m.detail.seq != msg.seq {
			return m, nil
		}
		if msg.err != nil {
			m.detail.phase = detailEditing
			m.detail.formErr = msg.err.Error()
			return m, nil
		}
		m.closeDetail()
		m.status = "task saved"
		return m, m.startLoadPage(m.page)

	case detailDeletedMsg:
		if m.detail == nil || m.detail.seq != msg.seq {
			return m, nil
		}
		if msg.err != nil {
			m.detail.phase = detailEditing
			m.detail.formErr = msg.err.Error()
			return m, nil
		}
		m.closeDetail()
		m.status = "task deleted"
		return m, m.startLoadPage(m.page)

	case tea.KeyPressMsg:
		switch m.mode {
		case modeCreate:
			return m.handleCreateFormKey(msg)
		case modeDetail:
			return m.handleDetailKey(msg)
		default:
			return m.handleNormalModeKey(msg)
		}

	default:
		return m, nil
	}
}

// handleNormalModeKey handles list-mode keys.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.reload):
		return m, m.startLoadPage(m.page)

	case key.Matches(msg, m.keys.moveDown):
		if count := m.visibleTaskCount(); count > 0 && m.cursor < count-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.moveUp):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.prevPage):
		if m.loading || m.pageData == nil {
			return m, nil
		}
		if m.page == 0 {
			m.status = "first page"
			return m, nil
		}
		m.cursor = 0
		return m, m.startLoadPage(m.page - 1)

	case key.Matches(msg, m.keys.nextPage):
		if m.loading || m.pageData == nil {
			return m, nil
		}
		if m.page >= m.pageData.TotalPages-1 {
			m.status = "last page"
			return m, nil
		}
		m.cursor = 0
		return m, m.startLoadPage(m.page + 1)

	case key.Matches(msg, m.keys.newTask):
		return m, m.startCreateForm()

	case key.Matches(msg, m.keys.openTask):
		task, ok := m.selectedTask()
		if !ok {
			m.status = "no task selected"
			return m, nil
		}
		return m, m.openDetail(task.ID)

	case key.Matches(msg, m.keys.copyTitle):
		task, ok := m.selectedTask()
		if !ok {
			m.status = "no task selected"
			return m, nil
		}
		if err := m.copyToClipboard(task.Title); err != nil {
			m.status = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = "title copied"
		return m, nil

	default:
		return m, nil
	}
}

// startLoadPage begins an asynchronous load of the requested page index and
// supersedes any load still in flight.
func (m *Model) startLoadPage(n int) tea.Cmd {
	m.loading = true
	m.listErr = ""
	m.loadSeq++
	return m.loadPageCmd(m.loadSeq, n)
}

// loadPageCmd fetches one list page.
func (m Model) loadPageCmd(seq, n int) tea.Cmd {
	svc := m.svc
	size := m.pageSize
	return func() tea.Msg {
		page, err := svc.ListTasks(context.Background(), n, size)
		if err != nil {
			return pageLoadedMsg{seq: seq, requested: n, err: err}
		}
		return pageLoadedMsg{seq: seq, requested: n, page: page}
	}
}

// selectedTask returns the task under the cursor.
func (m Model) selectedTask() (domain.Task, bool) {
	if m.pageData == nil || len(m.pageData.Content) == 0 {
		return domain.Task{}, false
	}
	idx := clamp(m.cursor, 0, len(m.pageData.Content)-1)
	return m.pageData.Content[idx], true
}

// visibleTaskCount returns the row count of the loaded page.
func (m Model) visibleTaskCount() int {
	if m.pageData == nil {
		return 0
	}
	return len(m.pageData.Content)
}
