package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arifzakri/belajar/internal/export"
	"github.com/arifzakri/belajar/internal/files"
	"github.com/arifzakri/belajar/internal/planner"
	"github.com/arifzakri/belajar/internal/reminder"
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("236"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("57"))

	completedStyle = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	popupStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(0, 1)

	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model owns Bubble Tea state for the planner session: the entry store, the
// active day filter, the add and slot forms, and the reminder popup stack.
type Model struct {
	ctx       context.Context
	store     *planner.Store
	scheduler *reminder.Scheduler
	manager   *files.Manager

	activeDay int // index into planner.WeekOrder
	selected  int

	mode       mode
	inputs     []textinput.Model
	focusIndex int

	popups      []popup
	nextPopupID int

	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeSlot
)

type popup struct {
	id      int
	title   string
	message string
}

// PopupMsg carries a reminder popup into the TUI. The notifier's sink sends
// it from timer goroutines via the running program.
type PopupMsg struct {
	Title   string
	Message string
}

type popupExpiredMsg struct {
	id int
}

type scheduledMsg struct {
	entry  planner.Entry
	window planner.Window
}

type exportResultMsg struct {
	path string
	err  error
}

// ProgramSink adapts a running Bubble Tea program into a reminder.PopupSink.
type ProgramSink struct {
	program *tea.Program
}

// NewProgramSink wraps the program so reminder popups surface in the TUI.
func NewProgramSink(program *tea.Program) ProgramSink {
	return ProgramSink{program: program}
}

// Show implements reminder.PopupSink.
func (s ProgramSink) Show(p reminder.Popup) {
	if s.program == nil {
		return
	}
	s.program.Send(PopupMsg{Title: p.Title, Message: p.Message})
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store *planner.Store, scheduler *reminder.Scheduler, manager *files.Manager) Model {
	return Model{
		ctx:        ctx,
		store:      store,
		scheduler:  scheduler,
		manager:    manager,
		activeDay:  0, // Monday
		mode:       modeNormal,
		statusLine: "a add  g slot  e export  q quit",
	}
}

// Init performs no startup work; entries arrive through user input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case PopupMsg:
		return m.handlePopup(msg)
	case popupExpiredMsg:
		return m.handlePopupExpired(msg)
	case scheduledMsg:
		return m.handleScheduled(msg)
	case exportResultMsg:
		return m.handleExportResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleFormKey(msg)
	}

	visible := m.visibleEntries()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.activeDay = (m.activeDay + 6) % 7
		m.selected = 0
		m.errorLine = ""
	case "right", "l":
		m.activeDay = (m.activeDay + 1) % 7
		m.selected = 0
		m.errorLine = ""
	case "down", "j":
		if m.selected < len(visible)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case " ", "x":
		if m.selected < len(visible) {
			entry, err := m.store.Toggle(visible[m.selected].ID)
			if err != nil {
				m.errorLine = err.Error()
				return m, nil
			}
			state := "pending"
			if entry.Completed {
				state = "completed"
			}
			m.statusLine = fmt.Sprintf("Marked %s as %s", entry.Subject, state)
			m.errorLine = ""
		}
	case "a":
		return m.beginAdd("")
	case "g":
		return m.beginSlot()
	case "e":
		return m, m.exportCmd()
	case "c":
		if len(m.popups) > 0 {
			m.popups = m.popups[1:]
		}
	}

	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.inputs = nil
		m.statusLine = "Cancelled."
		m.errorLine = ""
		return m, nil
	case tea.KeyEnter:
		if m.mode == modeSlot {
			return m.submitSlot()
		}
		return m.submitAdd()
	case tea.KeyTab, tea.KeyDown:
		return m.cycleFocus(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.cycleFocus(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

func (m Model) cycleFocus(step int) (tea.Model, tea.Cmd) {
	m.inputs[m.focusIndex].Blur()
	m.focusIndex = (m.focusIndex + step + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focusIndex].Focus()
}

func (m Model) beginAdd(timePrefill string) (tea.Model, tea.Cmd) {
	m.mode = modeAdd
	m.focusIndex = 0
	m.inputs = make([]textinput.Model, 4)

	m.inputs[0] = textinput.New()
	m.inputs[0].Placeholder = "Subject"
	m.inputs[1] = textinput.New()
	m.inputs[1].Placeholder = "Time (e.g. 9:00 AM ║ 10:30 AM)"
	m.inputs[1].SetValue(timePrefill)
	m.inputs[2] = textinput.New()
	m.inputs[2].Placeholder = "Goal"
	m.inputs[3] = textinput.New()
	m.inputs[3].Placeholder = "Date YYYY-MM-DD (optional)"

	m.statusLine = fmt.Sprintf("New entry for %s", m.currentDay())
	m.errorLine = ""
	return m, m.inputs[0].Focus()
}

func (m Model) beginSlot() (tea.Model, tea.Cmd) {
	m.mode = modeSlot
	m.focusIndex = 0
	m.inputs = make([]textinput.Model, 2)

	m.inputs[0] = textinput.New()
	m.inputs[0].Placeholder = "Start (HH:MM)"
	m.inputs[1] = textinput.New()
	m.inputs[1].Placeholder = "Duration (minutes)"

	m.statusLine = "Generate a time slot"
	m.errorLine = ""
	return m, m.inputs[0].Focus()
}

func (m Model) submitSlot() (tea.Model, tea.Cmd) {
	minutes := 0
	if _, err := fmt.Sscanf(strings.TrimSpace(m.inputs[1].Value()), "%d", &minutes); err != nil {
		m.errorLine = "Please select both a start time and duration."
		return m, nil
	}

	slot, err := planner.FormatSlot(m.inputs[0].Value(), minutes, time.Now())
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	return m.beginAdd(slot)
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	var date time.Time
	if value := strings.TrimSpace(m.inputs[3].Value()); value != "" {
		parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			m.errorLine = fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", value)
			return m, nil
		}
		date = parsed
	}

	entry, err := m.store.Add(planner.Entry{
		Subject:   m.inputs[0].Value(),
		TimeRange: m.inputs[1].Value(),
		Goal:      m.inputs[2].Value(),
		Day:       planner.WeekOrder[m.activeDay],
		Date:      date,
	})
	if err != nil {
		m.errorLine = "Please fill in all fields! (" + err.Error() + ")"
		return m, nil
	}

	m.mode = modeNormal
	m.inputs = nil
	m.errorLine = ""
	m.statusLine = "Scheduling reminders for " + entry.Subject + "..."

	scheduler := m.scheduler
	return m, func() tea.Msg {
		window := scheduler.Schedule(entry)
		return scheduledMsg{entry: entry, window: window}
	}
}

func (m Model) handleScheduled(msg scheduledMsg) (tea.Model, tea.Cmd) {
	now := time.Now()
	m.statusLine = fmt.Sprintf("%s scheduled, starts %s",
		msg.entry.Subject, planner.RelativeLabel(msg.window.Start, now))
	return m, nil
}

func (m Model) handlePopup(msg PopupMsg) (tea.Model, tea.Cmd) {
	m.nextPopupID++
	id := m.nextPopupID
	m.popups = append(m.popups, popup{id: id, title: msg.Title, message: msg.Message})

	return m, tea.Tick(reminder.PopupTTL, func(time.Time) tea.Msg {
		return popupExpiredMsg{id: id}
	})
}

func (m Model) handlePopupExpired(msg popupExpiredMsg) (tea.Model, tea.Cmd) {
	for i, p := range m.popups {
		if p.id == msg.id {
			m.popups = append(m.popups[:i], m.popups[i+1:]...)
			break
		}
	}
	return m, nil
}

func (m Model) exportCmd() tea.Cmd {
	entries := m.store.All()
	manager := m.manager

	return func() tea.Msg {
		if _, err := manager.EnsureExportDir(); err != nil {
			return exportResultMsg{err: err}
		}
		path := manager.ExportPath(time.Now())

		file, err := os.Create(path)
		if err != nil {
			return exportResultMsg{err: err}
		}
		defer file.Close()

		if err := export.WritePDF(file, planner.GroupByDay(entries)); err != nil {
			return exportResultMsg{err: err}
		}
		return exportResultMsg{path: path}
	}
}

func (m Model) handleExportResult(msg exportResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = "export failed: " + msg.err.Error()
		return m, nil
	}
	m.statusLine = "Exported to " + msg.path
	m.errorLine = ""
	return m, nil
}

func (m Model) visibleEntries() []planner.Entry {
	return m.store.Visible(planner.WeekOrder[m.activeDay])
}

func (m Model) currentDay() time.Weekday {
	return planner.WeekOrder[m.activeDay]
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Weekly Study Planner"))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	visible := m.visibleEntries()
	if len(visible) == 0 {
		b.WriteString("(no entries for " + m.currentDay().String() + ")\n")
	} else {
		for i, entry := range visible {
			b.WriteString(m.renderEntry(entry, i == m.selected && m.mode == modeNormal))
			b.WriteByte('\n')
		}
	}

	if m.mode != modeNormal {
		b.WriteByte('\n')
		for i := range m.inputs {
			cursor := "  "
			if i == m.focusIndex {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(m.inputs[i].View())
			b.WriteByte('\n')
		}
		b.WriteString(statusStyle.Render("enter submit  tab next field  esc cancel"))
		b.WriteByte('\n')
	}

	for _, p := range m.popups {
		b.WriteByte('\n')
		b.WriteString(popupStyle.Render(p.title + "\n" + p.message + "\n(c to close)"))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if m.errorLine != "" {
		b.WriteString(errorStyle.Render("! " + m.errorLine))
	} else {
		b.WriteString(statusStyle.Render(m.statusLine))
	}
	b.WriteByte('\n')

	b.WriteString(statusStyle.Render("h/l day  j/k select  space toggle  a add  g slot  e export  c close popup  q quit"))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, day := range planner.WeekOrder {
		label := day.String()[:3]
		if i == m.activeDay {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, tabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderEntry(entry planner.Entry, selected bool) string {
	check := "[ ]"
	if entry.Completed {
		check = "[x]"
	}

	var lines []string
	title := fmt.Sprintf("%s %s", check, entry.Subject)
	lines = append(lines, title)
	lines = append(lines, "Time: "+entry.TimeRange)
	if entry.HasDate() {
		lines = append(lines, "Date: "+entry.Date.Format("Mon, 02 Jan 2006"))
	}
	lines = append(lines, "Goal: "+entry.Goal)

	body := strings.Join(lines, "\n")
	if entry.Completed {
		body = completedStyle.Render(body)
	}
	if selected {
		return selectedCardStyle.Render(body)
	}
	return cardStyle.Render(body)
}
