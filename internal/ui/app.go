package ui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/raihan324/Food-Application/internal/actor"
	"github.com/raihan324/Food-Application/internal/export"
	"github.com/raihan324/Food-Application/internal/fooditem"
	"github.com/raihan324/Food-Application/internal/logging"
)

// Form field order; the submit action sits after the last input.
const (
	fieldName = iota
	fieldCategory
	fieldDescription
	fieldPrice
	fieldCount
)

type focusArea int

const (
	focusForm focusArea = iota
	focusTable
)

// Messages.
type (
	snapshotMsg []fooditem.FoodItem
	createdMsg  fooditem.FoodItem
	deletedMsg  string
	exportedMsg string
	opErrMsg    struct{ err error }
)

// Model is the root Bubble Tea state for the dashboard.
type Model struct {
	repo       *fooditem.Repository
	actor      *actor.Actor
	exportPath string
	log        logging.Logger

	width  int
	height int
	ready  bool

	focus    focusArea
	inputs   [fieldCount]textinput.Model
	inputIdx int

	table   table.Model
	items   []fooditem.FoodItem // latest snapshot, unfiltered
	visible []fooditem.FoodItem // rows currently in the table
	dayOnly bool

	status  string
	formErr string
}

func newModel(opts Options) Model {
	m := Model{
		repo:       opts.Repo,
		actor:      opts.Actor,
		exportPath: opts.ExportPath,
		log:        opts.Log,
		focus:      focusForm,
	}
	if m.exportPath == "" {
		m.exportPath = "food-items-report.html"
	}

	placeholders := [fieldCount]string{
		fieldName:        "Enter food item name",
		fieldCategory:    "e.g., Appetizer, Main Course",
		fieldDescription: "Describe your food item...",
		fieldPrice:       "0.00",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		ti.Width = 38
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()

	m.table = newItemsTable()
	return m
}

// Init implements tea.Model. Snapshots are pushed by the feed; nothing to
// fetch here.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeTable()
		return m, nil

	case snapshotMsg:
		m.items = msg
		m.refreshRows()
		return m, nil

	case createdMsg:
		m.status = fmt.Sprintf("Food item %q added successfully!", msg.Name)
		m.formErr = ""
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m, nil

	case deletedMsg:
		m.status = "Food item deleted."
		return m, nil

	case exportedMsg:
		m.status = fmt.Sprintf("Printable report written to %s", string(msg))
		return m, nil

	case opErrMsg:
		return m.handleOpError(msg.err), nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab":
		m.cycleFocus(msg.String() == "shift+tab")
		return m, nil
	}

	if m.focus == focusForm {
		return m.handleFormKey(msg)
	}
	return m.handleTableKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		return m, m.createCmd()
	}
	var cmd tea.Cmd
	m.inputs[m.inputIdx], cmd = m.inputs[m.inputIdx].Update(msg)
	return m, cmd
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "f":
		m.dayOnly = !m.dayOnly
		m.refreshRows()
		if m.dayOnly {
			m.status = "Showing today's items only."
		} else {
			m.status = "Showing all items."
		}
		return m, nil
	case "d":
		if item, ok := m.selectedItem(); ok {
			return m, m.deleteCmd(item.ID)
		}
		return m, nil
	case "p":
		return m, m.exportCmd()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) cycleFocus(backwards bool) {
	step := 1
	if backwards {
		step = -1
	}

	if m.focus == focusForm {
		m.inputs[m.inputIdx].Blur()
		next := m.inputIdx + step
		if next >= fieldCount || next < 0 {
			m.focus = focusTable
			m.table.Focus()
			m.inputIdx = 0
			return
		}
		m.inputIdx = next
		m.inputs[m.inputIdx].Focus()
		return
	}

	m.table.Blur()
	m.focus = focusForm
	if backwards {
		m.inputIdx = fieldCount - 1
	} else {
		m.inputIdx = 0
	}
	m.inputs[m.inputIdx].Focus()
}

func (m Model) handleOpError(err error) Model {
	switch {
	case fooditem.IsValidation(err):
		m.formErr = "Please fill in all fields (" + err.Error() + ")"
	case fooditem.IsPrecondition(err):
		m.formErr = "Sign in first: " + err.Error()
	case fooditem.IsNotFound(err):
		m.status = "That item is gone already."
	default:
		m.status = "Operation failed: " + err.Error()
		m.log.Error(context.Background(), "operation failed", "error", err)
	}
	return m
}

func (m Model) createCmd() tea.Cmd {
	draft := fooditem.Draft{
		Name:        strings.TrimSpace(m.inputs[fieldName].Value()),
		Category:    strings.TrimSpace(m.inputs[fieldCategory].Value()),
		Description: strings.TrimSpace(m.inputs[fieldDescription].Value()),
	}
	// A non-numeric price stays zero and fails create validation with the
	// same "price" entry a missing one would.
	if v, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[fieldPrice].Value()), 64); err == nil {
		draft.Price = v
	}

	repo := m.repo
	return func() tea.Msg {
		item, err := repo.Create(context.Background(), draft)
		if err != nil {
			return opErrMsg{err}
		}
		return createdMsg(item)
	}
}

func (m Model) deleteCmd(id string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		if err := repo.Delete(context.Background(), id); err != nil {
			return opErrMsg{err}
		}
		return deletedMsg(id)
	}
}

func (m Model) exportCmd() tea.Cmd {
	repo := m.repo
	path := m.exportPath
	return func() tea.Msg {
		now := time.Now()
		items, err := repo.List(context.Background(), fooditem.CreatedToday(time.Now))
		if err != nil {
			return opErrMsg{err}
		}
		page, err := export.HTML(items, now)
		if err != nil {
			return opErrMsg{err}
		}
		if err := os.WriteFile(path, page, 0o644); err != nil {
			return opErrMsg{err}
		}
		return exportedMsg(path)
	}
}

func (m *Model) selectedItem() (fooditem.FoodItem, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return fooditem.FoodItem{}, false
	}
	return m.visible[idx], true
}

// refreshRows recomputes the visible slice and table rows from the latest
// snapshot. The day filter is evaluated against the wall clock here, so a
// poll-driven snapshot after midnight drops yesterday's rows on its own.
func (m *Model) refreshRows() {
	m.visible = m.items
	if m.dayOnly {
		today := fooditem.CreatedToday(time.Now)
		filtered := make([]fooditem.FoodItem, 0, len(m.items))
		for _, item := range m.items {
			if today(item) {
				filtered = append(filtered, item)
			}
		}
		m.visible = filtered
	}
	m.table.SetRows(itemRows(m.visible))
	if cursor := m.table.Cursor(); cursor >= len(m.visible) && len(m.visible) > 0 {
		m.table.SetCursor(len(m.visible) - 1)
	}
}
