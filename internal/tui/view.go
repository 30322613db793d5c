package tui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Andryss/ToDoOps/internal/format"
	"github.com/Andryss/ToDoOps/internal/validate"
)

// View handles view.
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView("loading...")
		v.AltScreen = true
		return v
	}

	accent := lipgloss.Color("62")
	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle := lipgloss.NewStyle().Foreground(dim)
	alertStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	sections := []string{titleStyle.Render("todoops"), ""}

	if m.listErr != "" {
		sections = append(sections, alertStyle.Render("error: "+m.listErr), statusStyle.Render("press r to retry"), "")
	}

	switch {
	case m.loading && m.pageData == nil:
		sections = append(sections, statusStyle.Render("loading tasks..."))
	case m.pageData != nil && m.pageData.TotalElements == 0:
		sections = append(sections, "No tasks yet.", "Press n to create one.")
	case m.pageData != nil:
		sections = append(sections, m.renderTaskRows(accent, muted)...)
		if line := m.renderPagination(muted, dim); line != "" {
			sections = append(sections, "", line)
		}
		if m.loading {
			sections = append(sections, "", statusStyle.Render("reloading..."))
		}
	}

	if strings.TrimSpace(m.status) != "" && m.status != "ready" {
		sections = append(sections, "", statusStyle.Render(m.status))
	}
	content := strings.Join(sections, "\n")

	helpBubble := m.help
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		BorderTop(true).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))

	contentHeight := lipgloss.Height(content)
	if m.height > 0 {
		helpHeight := lipgloss.Height(helpLine)
		contentHeight = max(0, m.height-helpHeight)
		content = fitLines(content, contentHeight)
	}
	fullContent := content + "\n" + helpLine

	if overlay := m.renderModeOverlay(accent, muted, dim, m.width-8); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}

	v := tea.NewView(fullContent)
	v.AltScreen = true
	return v
}

// renderTaskRows renders the loaded page as one line per task.
func (m Model) renderTaskRows(accent, muted color.Color) []string {
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	metaStyle := lipgloss.NewStyle().Foreground(muted)

	titleWidth := 48
	if m.width > 0 {
		titleWidth = clamp(m.width-34, 20, 72)
	}

	rows := make([]string, 0, len(m.pageData.Content))
	for idx, task := range m.pageData.Content {
		cursor := "  "
		if idx == m.cursor {
			cursor = "│ "
		}
		line := cursor + truncate(task.Title, titleWidth)
		meta := task.Status.Label()
		if due := format.DateTime(task.DueDate); due != "" {
			meta += " • due " + due
		}
		line += "  " + metaStyle.Render(meta)
		if idx == m.cursor {
			line = activeStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return rows
}

// renderPagination renders the range and page indicators. Single-page lists
// show nothing.
func (m Model) renderPagination(muted, dim color.Color) string {
	page := m.pageData
	if page == nil || page.TotalPages <= 1 {
		return ""
	}
	first := page.Number*page.Size + 1
	last := min((page.Number+1)*page.Size, page.TotalElements)

	enabled := lipgloss.NewStyle().Foreground(muted)
	disabled := lipgloss.NewStyle().Foreground(dim)
	prev := enabled.Render("← h")
	if page.Number == 0 {
		prev = disabled.Render("← h")
	}
	next := enabled.Render("l →")
	if page.Number >= page.TotalPages-1 {
		next = disabled.Render("l →")
	}
	return lipgloss.NewStyle().Foreground(muted).Render(
		fmt.Sprintf("%d–%d of %d", first, last, page.TotalElements),
	) + "   " + prev + " " + lipgloss.NewStyle().Foreground(dim).Render(
		fmt.Sprintf("Page %d of %d", page.Number+1, page.TotalPages),
	) + " " + next
}

// renderModeOverlay renders output for the current model state.
func (m Model) renderModeOverlay(accent, muted, dim color.Color, maxWidth int) string {
	switch m.mode {
	case modeCreate:
		return m.renderCreateOverlay(accent, muted, maxWidth)
	case modeDetail:
		return m.renderDetailOverlay(accent, muted, dim, maxWidth)
	default:
		return ""
	}
}

// renderCreateOverlay renders the new-task modal.
func (m Model) renderCreateOverlay(accent, muted color.Color, maxWidth int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if maxWidth > 0 {
		style = style.Width(clamp(maxWidth, 42, 88))
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)
	alertStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	lines := []string{titleStyle.Render("New Task")}
	lines = append(lines, m.renderFormInputs(m.form.inputs, m.form.focus, accent, muted, maxWidth)...)
	if m.form.errMsg != "" {
		lines = append(lines, alertStyle.Render(m.form.errMsg))
	}
	if m.form.saving {
		lines = append(lines, hintStyle.Render("creating..."))
	} else {
		lines = append(lines, hintStyle.Render("enter save • tab next field • esc cancel"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderDetailOverlay renders the task detail modal for its current phase.
func (m Model) renderDetailOverlay(accent, muted, dim color.Color, maxWidth int) string {
	d := m.detail
	if d == nil {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if maxWidth > 0 {
		style = style.Width(clamp(maxWidth, 44, 96))
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle := lipgloss.NewStyle().Foreground(muted)
	alertStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

	switch d.phase {
	case detailLoading:
		return style.Render(strings.Join([]string{
			titleStyle.Render("Task"),
			hintStyle.Render("loading..."),
			hintStyle.Render("esc cancel"),
		}, "\n"))

	case detailLoadFailed:
		return style.Render(strings.Join([]string{
			titleStyle.Render("Task"),
			alertStyle.Render("error: " + d.loadErr),
			hintStyle.Render("r retry • esc back to list"),
		}, "\n"))

	case detailConfirmingDiscard:
		return style.Render(strings.Join([]string{
			titleStyle.Render("Discard Changes"),
			"This task has unsaved changes.",
			renderConfirmChoices("keep editing", "discard", d.confirmChoice, accent, muted),
			hintStyle.Render("enter apply • esc keep editing • h/l switch • y discard • n keep"),
		}, "\n"))

	case detailConfirmingDelete:
		return style.Render(strings.Join([]string{
			titleStyle.Render("Delete Task"),
			truncate(d.task.Title, 60),
			renderConfirmChoices("cancel", "delete", d.confirmChoice, accent, muted),
			hintStyle.Render("enter apply • esc cancel • h/l switch • y delete • n cancel"),
		}, "\n"))
	}

	lines := []string{titleStyle.Render(fmt.Sprintf("Task #%d", d.taskID))}
	lines = append(lines, hintStyle.Render("created "+format.DateTime(&d.task.CreatedAt)))
	lines = append(lines, m.renderFormInputs(d.inputs, d.focus, accent, muted, maxWidth)...)
	lines = append(lines, renderStatusSelector(d, accent, muted))

	if preview := m.renderDescriptionPreview(d, dim, maxWidth); preview != "" {
		lines = append(lines, "", preview)
	}
	if d.formErr != "" {
		lines = append(lines, alertStyle.Render(d.formErr))
	}
	switch d.phase {
	case detailSaving:
		lines = append(lines, hintStyle.Render("saving..."))
	case detailDeleting:
		lines = append(lines, hintStyle.Render("deleting..."))
	default:
		lines = append(lines, hintStyle.Render("enter save • tab next field • ctrl+d delete • esc close"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderFormInputs renders the labelled text inputs shared by the create and
// detail modals, with character counters on the limited fields.
func (m Model) renderFormInputs(inputs []textinput.Model, focus int, accent, muted color.Color, maxWidth int) []string {
	labelStyle := lipgloss.NewStyle().Foreground(muted)
	activeLabelStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	counterStyle := lipgloss.NewStyle().Foreground(muted)

	limits := []int{validate.TitleMaxLength, validate.DescriptionMaxLength, 0}

	lines := make([]string, 0, len(inputs)*2)
	for idx := range inputs {
		label := formFieldLabels[idx]
		styled := labelStyle.Render(label)
		if idx == focus {
			styled = activeLabelStyle.Render(label)
		}
		if idx < len(limits) && limits[idx] > 0 {
			count := len([]rune(inputs[idx].Value()))
			styled += " " + counterStyle.Render(fmt.Sprintf("%d/%d", count, limits[idx]))
		}
		in := inputs[idx]
		in.SetWidth(max(20, clamp(maxWidth, 42, 88)-8))
		lines = append(lines, styled, in.View())
	}
	return lines
}

// renderStatusSelector renders the forward-only status choices.
func renderStatusSelector(d *detailView, accent, muted color.Color) string {
	labelStyle := lipgloss.NewStyle().Foreground(muted)
	activeLabelStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)

	label := labelStyle.Render("status")
	if d.focus == detailFieldStatus {
		label = activeLabelStyle.Render("status")
	}
	parts := make([]string, 0, len(d.statusOptions))
	for idx, s := range d.statusOptions {
		name := s.Label()
		if idx == d.statusIdx {
			parts = append(parts, selectedStyle.Render("["+name+"]"))
		} else {
			parts = append(parts, labelStyle.Render(" "+name+" "))
		}
	}
	return label + "\n" + strings.Join(parts, " ")
}

// renderConfirmChoices renders a two-option confirm row. Option zero is the
// safe one.
func renderConfirmChoices(safe, destructive string, choice int, accent, muted color.Color) string {
	safeStyle := lipgloss.NewStyle().Foreground(muted)
	destructiveStyle := lipgloss.NewStyle().Foreground(muted)
	if choice == 0 {
		safeStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	} else {
		destructiveStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	}
	return safeStyle.Render("["+safe+"]") + "  " + destructiveStyle.Render("["+destructive+"]")
}

// renderDescriptionPreview renders the typed description as markdown under
// the form, so formatting mistakes show up before saving.
func (m Model) renderDescriptionPreview(d *detailView, dim color.Color, maxWidth int) string {
	text := strings.TrimSpace(d.inputs[detailFieldDescription].Value())
	if text == "" {
		return ""
	}
	wrap := clamp(maxWidth, 44, 96) - 4
	rendered := m.md.render(text, wrap)
	if rendered == "" {
		return ""
	}
	header := lipgloss.NewStyle().Foreground(dim).Render("preview")
	return header + "\n" + fitLines(rendered, 8)
}

// clamp clamps the requested operation.
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// max returns the larger of the provided values.
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// min returns the smaller of the provided values.
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent overlays on content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
