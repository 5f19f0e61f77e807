package tui

import (
	"MyStorage/internal/models"
	"MyStorage/internal/services"
	"MyStorage/internal/state"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Syncer is the background refresh scheduler.
type Syncer interface {
	Start(ctx context.Context, refresh services.RefreshFunc) error
	Stop()
	SetVisible(visible bool)
}

type prompt int

const (
	promptNone prompt = iota
	promptSearch
	promptShare
)

type confirmation struct {
	question string
	action   func() tea.Cmd
}

type Model struct {
	ctx        context.Context
	controller *state.Controller
	syncer     Syncer
	log        *logrus.Logger
	send       func(tea.Msg)
	syncing    bool
	shown      state.Screen
	entered    bool

	loginForm    *form
	registerForm *form
	boxForm      *form
	itemForm     *form
	promptInput  textinput.Model
	prompt       prompt
	confirm      *confirmation
	cursor       int
	width        int
}

const (
	loginEmail = iota
	loginPassword
)

const (
	registerUsername = iota
	registerEmail
	registerPassword
)

const (
	boxName = iota
	boxDescription
	boxLocation
	boxPhoto
)

const (
	itemName = iota
	itemDescription
	itemCategory
	itemPhoto
)

func NewModel(ctx context.Context, controller *state.Controller, syncer Syncer, logService services.LogService) *Model {
	categories := make([]string, 0, len(models.Categories))
	for _, category := range models.Categories {
		categories = append(categories, category.Label())
	}
	promptInput := textinput.New()
	promptInput.Width = 40
	return &Model{
		ctx:        ctx,
		controller: controller,
		syncer:     syncer,
		log:        logService.Log,
		loginForm: newForm(
			fieldSpec{label: "Email", placeholder: "you@example.com", limit: 100},
			fieldSpec{label: "Password", secret: true, limit: 128},
		),
		registerForm: newForm(
			fieldSpec{label: "Username", limit: 50},
			fieldSpec{label: "Email", placeholder: "you@example.com", limit: 100},
			fieldSpec{label: "Password", secret: true, limit: 128},
		),
		boxForm: newForm(
			fieldSpec{label: "Name", placeholder: "required", limit: 100},
			fieldSpec{label: "Description", limit: 500},
			fieldSpec{label: "Location", placeholder: "Garage, attic...", limit: 200},
			fieldSpec{label: "Photo file", placeholder: "path to an image", limit: 500},
		),
		itemForm: newForm(
			fieldSpec{label: "Name", placeholder: "required", limit: 100},
			fieldSpec{label: "Description", limit: 500},
			fieldSpec{label: "Category", placeholder: strings.Join(categories, ", "), limit: 50},
			fieldSpec{label: "Photo file", placeholder: "path to an image", limit: 500},
		),
		promptInput: promptInput,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.controller.Init(), m.settle())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.FocusMsg:
		m.syncer.SetVisible(true)
	case tea.BlurMsg:
		m.syncer.SetVisible(false)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stopSync()
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)
	default:
		cmd = m.controller.Update(msg)
	}
	return m, tea.Batch(cmd, m.settle())
}

// settle keeps the scheduler in step with the session and prepares forms
// whenever the screen changes.
func (m *Model) settle() tea.Cmd {
	screen := m.controller.Screen()
	if screen.Authenticated() && !m.syncing {
		err := m.syncer.Start(m.ctx, func(ctx context.Context) {
			if m.send != nil {
				m.send(state.SyncTickMsg{})
			}
		})
		if err != nil {
			m.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("could not start sync")
		} else {
			m.syncing = true
		}
	} else if !screen.Authenticated() && m.syncing {
		m.stopSync()
	}
	if m.entered && screen == m.shown {
		return nil
	}
	m.entered = true
	m.shown = screen
	return m.enter(screen)
}

func (m *Model) stopSync() {
	if m.syncing {
		m.syncer.Stop()
		m.syncing = false
	}
}

func (m *Model) enter(screen state.Screen) tea.Cmd {
	m.prompt = promptNone
	m.confirm = nil
	switch screen {
	case state.ScreenLogin:
		return m.loginForm.reset()
	case state.ScreenRegister:
		return m.registerForm.reset()
	case state.ScreenBoxes, state.ScreenBoxDetail:
		m.cursor = 0
	case state.ScreenAddBox:
		return m.boxForm.reset()
	case state.ScreenAddItem:
		return m.itemForm.reset()
	case state.ScreenEditItem:
		cmd := m.itemForm.reset()
		if editing := m.controller.Editing(); editing != nil {
			seed := state.ItemFormFrom(*editing)
			m.itemForm.set(itemName, seed.Name)
			m.itemForm.set(itemDescription, seed.Description)
			m.itemForm.set(itemCategory, seed.Category)
		}
		return cmd
	}
	return nil
}

func (m *Model) handleKey(key tea.KeyMsg) tea.Cmd {
	if m.controller.Notice() != "" {
		m.controller.DismissNotice()
		return nil
	}
	if m.confirm != nil {
		confirm := m.confirm
		m.confirm = nil
		if key.String() == "y" {
			return confirm.action()
		}
		return nil
	}
	switch m.controller.Screen() {
	case state.ScreenLogin:
		return m.loginKey(key)
	case state.ScreenRegister:
		return m.registerKey(key)
	case state.ScreenBoxes:
		return m.boxesKey(key)
	case state.ScreenBoxDetail:
		return m.detailKey(key)
	case state.ScreenAddBox:
		return m.addBoxKey(key)
	case state.ScreenAddItem, state.ScreenEditItem:
		return m.itemKey(key)
	}
	return nil
}

func (m *Model) loginKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.controller.Login(m.loginForm.value(loginEmail), m.loginForm.value(loginPassword))
	case "ctrl+r":
		m.controller.ShowRegister()
		return nil
	}
	return m.loginForm.Update(key)
}

func (m *Model) registerKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.controller.Register(
			m.registerForm.value(registerUsername),
			m.registerForm.value(registerEmail),
			m.registerForm.value(registerPassword),
		)
	case "esc":
		return m.controller.Back()
	}
	return m.registerForm.Update(key)
}

func (m *Model) boxesKey(key tea.KeyMsg) tea.Cmd {
	boxes := m.controller.Boxes()
	switch key.String() {
	case "up", "k":
		m.moveCursor(-1, len(boxes))
	case "down", "j":
		m.moveCursor(1, len(boxes))
	case "enter":
		if m.cursor < len(boxes) {
			return m.controller.OpenBox(boxes[m.cursor].ID)
		}
	case "n":
		m.controller.ShowAddBox()
	case "r":
		return m.controller.Refresh(false)
	case "L":
		m.controller.Logout()
	case "q":
		m.stopSync()
		return tea.Quit
	}
	return nil
}

func (m *Model) detailKey(key tea.KeyMsg) tea.Cmd {
	if m.prompt != promptNone {
		return m.promptKey(key)
	}
	items := m.controller.VisibleItems()
	switch key.String() {
	case "up", "k":
		m.moveCursor(-1, len(items))
	case "down", "j":
		m.moveCursor(1, len(items))
	case "a":
		m.controller.ShowAddItem()
	case "e", "enter":
		if m.cursor < len(items) {
			m.controller.EditItem(items[m.cursor].ID)
		}
	case "d":
		if m.cursor < len(items) {
			item := items[m.cursor]
			m.confirm = &confirmation{
				question: fmt.Sprintf("Delete %q? (y/n)", item.Name),
				action:   func() tea.Cmd { return m.controller.DeleteItem(item.ID) },
			}
		}
	case "x":
		if box := m.controller.CurrentBox(); box != nil {
			id, name := box.ID, box.Name
			m.confirm = &confirmation{
				question: fmt.Sprintf("Delete box %q and everything in it? (y/n)", name),
				action:   func() tea.Cmd { return m.controller.DeleteBox(id) },
			}
		}
	case "/":
		return m.openPrompt(promptSearch, m.controller.Search())
	case "s":
		return m.openPrompt(promptShare, "")
	case "r":
		return m.controller.Refresh(false)
	case "esc", "backspace":
		return m.controller.Back()
	case "q":
		m.stopSync()
		return tea.Quit
	}
	return nil
}

func (m *Model) openPrompt(kind prompt, value string) tea.Cmd {
	m.prompt = kind
	m.promptInput.SetValue(value)
	m.promptInput.Placeholder = "name or category"
	if kind == promptShare {
		m.promptInput.Placeholder = "friend@example.com"
	}
	return m.promptInput.Focus()
}

func (m *Model) promptKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "esc":
		m.prompt = promptNone
		m.promptInput.Blur()
		return nil
	case "enter":
		kind := m.prompt
		m.prompt = promptNone
		m.promptInput.Blur()
		if kind == promptShare {
			return m.controller.ShareBox(m.promptInput.Value())
		}
		return nil
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(key)
	if m.prompt == promptSearch {
		m.controller.SetSearch(m.promptInput.Value())
		m.cursor = 0
	}
	return cmd
}

func (m *Model) addBoxKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		return m.controller.SubmitBox(state.BoxForm{
			Name:        m.boxForm.value(boxName),
			Description: m.boxForm.value(boxDescription),
			Location:    m.boxForm.value(boxLocation),
			PhotoPath:   strings.TrimSpace(m.boxForm.value(boxPhoto)),
		})
	case "esc":
		return m.controller.Back()
	}
	return m.boxForm.Update(key)
}

func (m *Model) itemKey(key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "enter":
		form := state.ItemForm{
			Name:        m.itemForm.value(itemName),
			Description: m.itemForm.value(itemDescription),
			Category:    m.itemForm.value(itemCategory),
			PhotoPath:   strings.TrimSpace(m.itemForm.value(itemPhoto)),
		}
		if editing := m.controller.Editing(); editing != nil {
			form.PhotoURL = editing.PhotoURL
		}
		return m.controller.SubmitItem(form)
	case "esc":
		return m.controller.Back()
	}
	return m.itemForm.Update(key)
}

func (m *Model) moveCursor(delta, size int) {
	if size == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= size {
		m.cursor = size - 1
	}
}
