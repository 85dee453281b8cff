// Package tui is the terminal crash report viewer: a filterable report list
// and, for the opened report, a stack of expandable cards.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shhac/whoops/internal/card"
	"github.com/shhac/whoops/internal/domain"
	"github.com/shhac/whoops/internal/storage"
)

type viewMode int

const (
	listView viewMode = iota
	detailView
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title line and the blank line under it
	detailHeaderLines = 2
	// header and filter lines above the report list
	listHeaderLines = 2
	// listHeaderLines plus the blank, status and help lines below the list
	listChromeLines = listHeaderLines + 3
)

type reportsLoadedMsg struct {
	reports []domain.Report
	err     error
}

type reportDeletedMsg struct {
	id  string
	err error
}

// Options configures the terminal viewer.
type Options struct {
	Limit    int           // max reports listed, 0 for all
	Duration time.Duration // card animation duration
	Store    card.Store    // card expansion state; in-memory when nil
	Theme    *Theme
}

// Model is the bubbletea model of the terminal viewer.
type Model struct {
	repo   storage.Repository
	logger *slog.Logger
	opts   Options
	keys   keyMap
	help   help.Model
	theme  Theme

	filter    textinput.Model
	filtering bool

	reports []domain.Report
	shown   []domain.Report
	cursor  int

	mode     viewMode
	current  *domain.Report
	cards    []*Card
	focus    int
	nextID   int
	viewport viewport.Model

	pendingDelete string
	status        string
	width         int
	height        int
}

// New creates the viewer over repo.
func New(repo storage.Repository, logger *slog.Logger, opts Options) Model {
	if opts.Store == nil {
		opts.Store = card.MapStore{}
	}
	th := DefaultTheme
	if opts.Theme != nil {
		th = *opts.Theme
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter reports"

	return Model{
		repo:     repo,
		logger:   logger,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		theme:    th,
		filter:   ti,
		viewport: viewport.New(defaultWidth, defaultHeight-detailHeaderLines-2),
		width:    defaultWidth,
		height:   defaultHeight,
	}
}

// Init loads the report list.
func (m Model) Init() tea.Cmd {
	return m.loadReports()
}

func (m Model) loadReports() tea.Cmd {
	repo, limit := m.repo, m.opts.Limit
	return func() tea.Msg {
		reports, err := repo.ListReports(limit)
		return reportsLoadedMsg{reports: reports, err: err}
	}
}

func (m Model) deleteReport(id string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		return reportDeletedMsg{id: id, err: repo.DeleteReport(id)}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-detailHeaderLines-2, 1)
		m.syncViewport()
		return m, nil

	case reportsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load reports", slog.Any("error", msg.err))
			m.status = "Failed to load reports: " + msg.err.Error()
			return m, nil
		}
		m.reports = msg.reports
		m.applyFilter()
		if m.mode == detailView && !m.contains(m.current.ID) {
			m.closeReport()
		}
		return m, nil

	case reportDeletedMsg:
		if msg.err != nil {
			m.logger.Error("failed to delete report", slog.String("id", msg.id), slog.Any("error", msg.err))
			m.status = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.logger.Info("deleted report", slog.String("id", msg.id))
		m.status = "Deleted " + msg.id
		return m, m.loadReports()

	case FrameMsg:
		var cmds []tea.Cmd
		for _, c := range m.cards {
			cmds = append(cmds, c.Update(msg))
		}
		m.syncViewport()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.mode == detailView {
			return m.handleDetailKey(msg)
		}
		return m.handleListKey(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Delete) {
		m.pendingDelete = ""
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(m.shown)-1, 0))
	case key.Matches(msg, m.keys.Open):
		m.openReport(m.cursor)
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Reload):
		m.status = ""
		return m, m.loadReports()
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(m.shown) {
			return m.confirmDelete(m.shown[m.cursor].ID)
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Delete) {
		m.pendingDelete = ""
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closeReport()
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if len(m.cards) > 0 {
			cmd = m.cards[m.focus].Toggle()
		}
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
	case key.Matches(msg, m.keys.ExpandAll):
		cmd = m.setExpandedAll(true)
	case key.Matches(msg, m.keys.CollapseAll):
		cmd = m.setExpandedAll(false)
	case key.Matches(msg, m.keys.Delete):
		return m.confirmDelete(m.current.ID)
	default:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.syncViewport()
	m.ensureFocusVisible()
	return m, cmd
}

// confirmDelete deletes id on the second consecutive delete key press.
func (m Model) confirmDelete(id string) (tea.Model, tea.Cmd) {
	if m.pendingDelete != id {
		m.pendingDelete = id
		m.status = "Press d again to delete this report"
		return m, nil
	}
	m.pendingDelete = ""
	if m.mode == detailView {
		m.closeReport()
	}
	return m, m.deleteReport(id)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if msg.Button != tea.MouseButtonLeft {
		if m.mode == detailView {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.mode == listView {
		row := msg.Y - listHeaderLines + m.listOffset()
		if row >= 0 && row < len(m.shown) {
			if row == m.cursor {
				m.openReport(row)
			}
			m.cursor = row
		}
		return m, nil
	}

	i := m.cardAt(msg.Y - detailHeaderLines + m.viewport.YOffset)
	if i < 0 {
		return m, nil
	}
	m.setFocus(i)
	cmd := m.cards[i].Toggle()
	m.syncViewport()
	return m, cmd
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	var shown []domain.Report
	for _, r := range m.reports {
		if query == "" || matches(r, query) {
			shown = append(shown, r)
		}
	}
	m.shown = shown
	m.cursor = min(m.cursor, max(len(m.shown)-1, 0))
}

func matches(r domain.Report, query string) bool {
	for _, field := range []string{r.Title, r.Type, r.Message, r.Kind} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m *Model) contains(id string) bool {
	for _, r := range m.reports {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) openReport(i int) {
	if i < 0 || i >= len(m.shown) {
		return
	}
	r := m.shown[i]
	m.current = &r
	m.mode = detailView
	m.cards = reportCards(r, m.opts.Store, m.opts.Duration, m.nextID)
	m.nextID += len(m.cards)
	m.focus = 0
	m.setFocus(0)
	m.viewport.GotoTop()
	m.syncViewport()
	m.logger.Debug("opened report", slog.String("id", r.ID))
}

func (m *Model) closeReport() {
	m.mode = listView
	m.current = nil
	m.cards = nil
	m.focus = 0
}

func (m *Model) setFocus(i int) {
	if len(m.cards) == 0 {
		return
	}
	m.focus = max(0, min(i, len(m.cards)-1))
	for j, c := range m.cards {
		c.Focused = j == m.focus
	}
}

func (m *Model) setExpandedAll(expanded bool) tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range m.cards {
		cmds = append(cmds, c.SetExpanded(expanded))
	}
	return tea.Batch(cmds...)
}

func (m *Model) cardWidth() int {
	return max(m.width-m.theme.Base.GetHorizontalFrameSize(), minCardWidth)
}

// cardBounds returns the first and one-past-last content line of each card.
func (m *Model) cardBounds() [][2]int {
	bounds := make([][2]int, len(m.cards))
	y := 0
	for i, c := range m.cards {
		h := strings.Count(c.View(m.cardWidth(), m.theme), "\n") + 1
		bounds[i] = [2]int{y, y + h}
		y += h
	}
	return bounds
}

// cardAt returns the index of the card covering content line y, or -1.
func (m *Model) cardAt(y int) int {
	for i, b := range m.cardBounds() {
		if y >= b[0] && y < b[1] {
			return i
		}
	}
	return -1
}

func (m *Model) syncViewport() {
	if m.mode != detailView {
		return
	}
	views := make([]string, len(m.cards))
	for i, c := range m.cards {
		views[i] = c.View(m.cardWidth(), m.theme)
	}
	m.viewport.SetContent(strings.Join(views, "\n"))
}

func (m *Model) ensureFocusVisible() {
	if len(m.cards) == 0 {
		return
	}
	b := m.cardBounds()[m.focus]
	switch {
	case b[0] < m.viewport.YOffset:
		m.viewport.SetYOffset(b[0])
	case b[1] > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(max(b[1]-m.viewport.Height, 0))
	}
}

func (m Model) listHeight() int {
	return max(m.height-listChromeLines, 1)
}

// listOffset is the index of the first visible list row.
func (m Model) listOffset() int {
	return max(m.cursor-m.listHeight()+1, 0)
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.mode == detailView && m.current != nil {
		b.WriteString(m.viewDetail())
	} else {
		b.WriteString(m.viewList())
	}
	return m.theme.Base.Render(b.String())
}

func (m Model) viewList() string {
	th := m.theme
	lines := []string{th.Header.Render(fmt.Sprintf("whoops · %d crash reports", len(m.reports)))}

	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	} else {
		lines = append(lines, "")
	}

	if len(m.shown) == 0 {
		lines = append(lines, th.Dim.Render("No crash reports"))
	}
	start := m.listOffset()
	end := min(start+m.listHeight(), len(m.shown))
	for i := start; i < end; i++ {
		lines = append(lines, m.listRow(m.shown[i], i == m.cursor))
	}

	lines = append(lines, "", th.Status.Render(m.status), m.help.View(listKeys{m.keys}))
	return strings.Join(lines, "\n")
}

func (m Model) listRow(r domain.Report, selected bool) string {
	th := m.theme
	marker := "  "
	title := th.Body
	if selected {
		marker = th.Selected.Render("› ")
		title = th.Selected
	}
	badge := th.Error.Render("ERROR")
	if r.Kind == domain.KindPanic {
		badge = th.Panic.Render("PANIC")
	}
	when := th.Dim.Render(r.Timestamp.Local().Format("Jan 2 15:04"))

	room := m.cardWidth() - lipgloss.Width(marker+badge+when) - 2
	return marker + badge + " " + title.Render(truncate(rowTitle(r)+" · "+firstLine(r.Message), room)) + " " + when
}

func rowTitle(r domain.Report) string {
	if r.Title != "" {
		return r.Title
	}
	if r.Type != "" {
		return r.Type
	}
	return r.Kind
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func (m Model) viewDetail() string {
	th := m.theme
	header := th.Header.Render(rowTitle(*m.current)) + " " + th.Dim.Render(m.current.ID)
	return strings.Join([]string{
		header,
		"",
		m.viewport.View(),
		th.Status.Render(m.status),
		m.help.View(detailKeys{m.keys}),
	}, "\n")
}
