package state

import (
	"MyStorage/internal/api"
	"MyStorage/internal/dto"
	"MyStorage/internal/models"
	"MyStorage/internal/services"
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

const sessionEndedNotice = "Your session has ended. Please log in again."

// SessionState is the part of the session the controller reads.
type SessionState interface {
	Active() bool
}

// Controller owns the current screen and every entity shown on it. It is
// driven from the bubbletea update loop and is not safe for concurrent use;
// network work happens inside the tea.Cmd values it returns.
type Controller struct {
	ctx      context.Context
	session  SessionState
	auth     services.AuthService
	boxes    services.BoxService
	items    services.ItemService
	uploads  services.UploadService
	log      *logrus.Logger
	screen   Screen
	user     *models.User
	boxList  []models.Box
	box      *models.Box
	itemList []models.Item
	editing  *models.Item
	search   string
	notice   string
	busy     bool

	// epoch advances whenever the session changes hands; fetch counters
	// advance on every dispatch and on navigation.
	epoch      uint64
	boxesGen   uint64
	detailGen  uint64
	userLoaded bool
}

func NewController(
	ctx context.Context,
	session SessionState,
	auth services.AuthService,
	boxes services.BoxService,
	items services.ItemService,
	uploads services.UploadService,
	logService services.LogService,
) *Controller {
	return &Controller{
		ctx:     ctx,
		session: session,
		auth:    auth,
		boxes:   boxes,
		items:   items,
		uploads: uploads,
		log:     logService.Log,
		screen:  ScreenLogin,
	}
}

// Init picks the first screen from the stored session.
func (c *Controller) Init() tea.Cmd {
	if !c.session.Active() {
		c.screen = ScreenLogin
		return nil
	}
	c.screen = ScreenBoxes
	return tea.Batch(c.fetchUser(), c.fetchBoxes(false))
}

func (c *Controller) Screen() Screen { return c.screen }

func (c *Controller) User() *models.User { return c.user }

func (c *Controller) Boxes() []models.Box { return c.boxList }

func (c *Controller) CurrentBox() *models.Box { return c.box }

func (c *Controller) Items() []models.Item { return c.itemList }

func (c *Controller) Editing() *models.Item { return c.editing }

func (c *Controller) Search() string { return c.search }

func (c *Controller) Notice() string { return c.notice }

func (c *Controller) Busy() bool { return c.busy }

// VisibleItems applies the search term to the open box's items.
func (c *Controller) VisibleItems() []models.Item {
	return services.FilterItems(c.itemList, c.search)
}

func (c *Controller) SetSearch(term string) {
	c.search = term
}

func (c *Controller) DismissNotice() {
	c.notice = ""
}

func (c *Controller) ShowRegister() { c.moveTo(ScreenRegister) }

func (c *Controller) ShowLogin() { c.moveTo(ScreenLogin) }

func (c *Controller) ShowAddBox() { c.moveTo(ScreenAddBox) }

func (c *Controller) ShowAddItem() {
	if c.box == nil {
		return
	}
	c.moveTo(ScreenAddItem)
}

// EditItem opens the edit screen for an item of the open box.
func (c *Controller) EditItem(id uint) {
	for i := range c.itemList {
		if c.itemList[i].ID == id {
			item := c.itemList[i]
			if c.moveTo(ScreenEditItem) {
				c.editing = &item
			}
			return
		}
	}
}

// Back follows the explicit parent of each screen.
func (c *Controller) Back() tea.Cmd {
	switch c.screen {
	case ScreenRegister:
		c.moveTo(ScreenLogin)
	case ScreenBoxDetail:
		c.moveTo(ScreenBoxes)
		c.box = nil
		c.itemList = nil
		c.search = ""
		return c.fetchBoxes(false)
	case ScreenAddItem, ScreenEditItem:
		c.moveTo(ScreenBoxDetail)
		c.editing = nil
	case ScreenAddBox:
		c.moveTo(ScreenBoxes)
	}
	return nil
}

func (c *Controller) OpenBox(id uint) tea.Cmd {
	if !c.moveTo(ScreenBoxDetail) {
		return nil
	}
	c.search = ""
	c.itemList = nil
	c.box = nil
	for i := range c.boxList {
		if c.boxList[i].ID == id {
			box := c.boxList[i]
			c.box = &box
		}
	}
	if c.box == nil {
		c.box = &models.Box{ID: id}
	}
	return c.fetchBox(id, false)
}

// Refresh re-reads the list and, when a box is open, its items.
func (c *Controller) Refresh(background bool) tea.Cmd {
	if !c.screen.Authenticated() {
		return nil
	}
	cmds := []tea.Cmd{c.fetchBoxes(background)}
	if c.box != nil {
		cmds = append(cmds, c.fetchBox(c.box.ID, background))
	}
	return tea.Batch(cmds...)
}

func (c *Controller) Login(email, password string) tea.Cmd {
	if c.busy {
		return nil
	}
	c.busy = true
	epoch := c.epoch
	return func() tea.Msg {
		return LoggedInMsg{Epoch: epoch, Err: c.auth.Login(c.ctx, email, password)}
	}
}

func (c *Controller) Register(username, email, password string) tea.Cmd {
	if c.busy {
		return nil
	}
	c.busy = true
	epoch := c.epoch
	return func() tea.Msg {
		user, err := c.auth.Register(c.ctx, username, email, password)
		return RegisteredMsg{Epoch: epoch, User: user, Err: err}
	}
}

func (c *Controller) Logout() {
	if err := c.auth.Logout(); err != nil {
		c.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("logout did not clear stored token")
	}
	c.endSession("")
}

func (c *Controller) SubmitBox(form BoxForm) tea.Cmd {
	if !BoxFormReady(form) {
		c.notice = "Box name is required"
		return nil
	}
	if c.busy {
		return nil
	}
	c.busy = true
	epoch := c.epoch
	return func() tea.Msg {
		photoURL, err := c.upload(form.PhotoPath)
		if err != nil {
			return BoxSavedMsg{Epoch: epoch, Err: err}
		}
		box, err := c.boxes.CreateBox(c.ctx, dto.BoxCreateDTO{
			Name:        form.Name,
			Description: form.Description,
			Location:    form.Location,
			PhotoURL:    photoURL,
		})
		return BoxSavedMsg{Epoch: epoch, Box: box, Err: err}
	}
}

func (c *Controller) DeleteBox(id uint) tea.Cmd {
	if c.busy {
		return nil
	}
	c.busy = true
	epoch := c.epoch
	return func() tea.Msg {
		return BoxDeletedMsg{Epoch: epoch, BoxID: id, Err: c.boxes.DeleteBox(c.ctx, id)}
	}
}

// ShareBox grants access to the open box.
func (c *Controller) ShareBox(email string) tea.Cmd {
	if c.box == nil || c.busy {
		return nil
	}
	c.busy = true
	epoch, id := c.epoch, c.box.ID
	return func() tea.Msg {
		return BoxSharedMsg{Epoch: epoch, BoxID: id, Email: email, Err: c.boxes.ShareBox(c.ctx, id, email)}
	}
}

// SubmitItem creates on the add screen and updates on the edit screen.
func (c *Controller) SubmitItem(form ItemForm) tea.Cmd {
	if !ItemFormReady(form) {
		c.notice = "Item name and category are required"
		return nil
	}
	if c.box == nil || c.busy {
		return nil
	}
	epoch, boxID := c.epoch, c.box.ID
	switch c.screen {
	case ScreenAddItem:
		c.busy = true
		return func() tea.Msg {
			photoURL, err := c.upload(form.PhotoPath)
			if err != nil {
				return ItemSavedMsg{Epoch: epoch, Created: true, Err: err}
			}
			item, err := c.items.CreateItem(c.ctx, dto.ItemCreateDTO{
				Name:        form.Name,
				Description: form.Description,
				Category:    form.Category,
				PhotoURL:    photoURL,
				BoxID:       boxID,
			})
			return ItemSavedMsg{Epoch: epoch, Item: item, Created: true, Err: err}
		}
	case ScreenEditItem:
		if c.editing == nil {
			return nil
		}
		c.busy = true
		id := c.editing.ID
		return func() tea.Msg {
			photoURL := form.PhotoURL
			if form.PhotoPath != "" {
				uploaded, err := c.upload(form.PhotoPath)
				if err != nil {
					return ItemSavedMsg{Epoch: epoch, Err: err}
				}
				photoURL = uploaded
			}
			item, err := c.items.UpdateItem(c.ctx, id, dto.ItemUpdateDTO{
				Name:        &form.Name,
				Description: &form.Description,
				Category:    &form.Category,
				PhotoURL:    &photoURL,
			})
			return ItemSavedMsg{Epoch: epoch, Item: item, Err: err}
		}
	}
	return nil
}

func (c *Controller) DeleteItem(id uint) tea.Cmd {
	if c.busy {
		return nil
	}
	c.busy = true
	epoch := c.epoch
	return func() tea.Msg {
		return ItemDeletedMsg{Epoch: epoch, ItemID: id, Err: c.items.DeleteItem(c.ctx, id)}
	}
}

// Update applies a result message and returns any follow-up work.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case SyncTickMsg:
		return c.Refresh(true)

	case SessionEndedMsg:
		if c.screen.Authenticated() {
			c.endSession(sessionEndedNotice)
		}

	case LoggedInMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		return c.startSession()

	case RegisteredMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			if msg.User != nil {
				c.moveTo(ScreenLogin)
				c.notice = "Registration succeeded. Please log in."
				return nil
			}
			c.fail(msg.Err, false)
			return nil
		}
		c.user = msg.User
		c.userLoaded = true
		return c.startSession()

	case UserLoadedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		if msg.Err != nil {
			c.fail(msg.Err, true)
			return nil
		}
		c.user = msg.User
		c.userLoaded = true

	case BoxesLoadedMsg:
		if msg.Generation != c.boxesGen {
			return nil
		}
		if msg.Err != nil {
			c.fail(msg.Err, msg.Background)
			return nil
		}
		c.boxList = msg.Boxes

	case BoxLoadedMsg:
		if msg.Generation != c.detailGen || c.box == nil {
			return nil
		}
		if msg.Err != nil {
			c.fail(msg.Err, msg.Background)
			return nil
		}
		c.box = msg.Box
		c.itemList = msg.Items

	case BoxSavedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		c.moveTo(ScreenBoxes)
		return c.fetchBoxes(false)

	case BoxDeletedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		c.boxList = removeBox(c.boxList, msg.BoxID)
		if c.box != nil && c.box.ID == msg.BoxID {
			c.box = nil
			c.itemList = nil
			c.moveTo(ScreenBoxes)
		}
		return c.fetchBoxes(true)

	case BoxSharedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		c.notice = fmt.Sprintf("Box shared with %s", msg.Email)

	case ItemSavedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		if msg.Item != nil && c.box != nil && msg.Item.BoxID == c.box.ID {
			c.itemList = upsertItem(c.itemList, *msg.Item)
		}
		if c.screen == ScreenAddItem || c.screen == ScreenEditItem {
			c.editing = nil
			c.moveTo(ScreenBoxDetail)
		}

	case ItemDeletedMsg:
		if msg.Epoch != c.epoch {
			return nil
		}
		c.busy = false
		if msg.Err != nil {
			c.fail(msg.Err, false)
			return nil
		}
		c.itemList = removeItem(c.itemList, msg.ItemID)
		if c.editing != nil && c.editing.ID == msg.ItemID {
			c.editing = nil
			c.moveTo(ScreenBoxDetail)
		}
	}
	return nil
}

func (c *Controller) startSession() tea.Cmd {
	c.epoch++
	c.moveTo(ScreenBoxes)
	cmds := []tea.Cmd{c.fetchBoxes(false)}
	if !c.userLoaded {
		cmds = append(cmds, c.fetchUser())
	}
	return tea.Batch(cmds...)
}

// endSession drops every entity and returns to the login screen.
func (c *Controller) endSession(notice string) {
	c.epoch++
	c.moveTo(ScreenLogin)
	c.user = nil
	c.userLoaded = false
	c.boxList = nil
	c.box = nil
	c.itemList = nil
	c.editing = nil
	c.search = ""
	c.busy = false
	c.notice = notice
}

// fail routes an error. A 401 always ends the session; background
// failures are logged and otherwise ignored.
func (c *Controller) fail(err error, background bool) {
	if errors.Is(err, api.ErrUnauthorized) {
		c.endSession(sessionEndedNotice)
		return
	}
	if background {
		c.log.WithFields(logrus.Fields{
			"screen": c.screen.String(),
			"error":  err.Error(),
		}).Warn("background refresh failed")
		return
	}
	c.notice = err.Error()
}

// moveTo moves to screen when the transition table allows it and invalidates
// outstanding fetches.
func (c *Controller) moveTo(screen Screen) bool {
	if !c.screen.CanGo(screen) {
		c.log.WithFields(logrus.Fields{
			"from": c.screen.String(),
			"to":   screen.String(),
		}).Debug("transition not allowed")
		return false
	}
	if c.screen != screen {
		c.boxesGen++
		c.detailGen++
	}
	c.screen = screen
	return true
}

func (c *Controller) fetchUser() tea.Cmd {
	epoch := c.epoch
	return func() tea.Msg {
		user, err := c.auth.CurrentUser(c.ctx)
		return UserLoadedMsg{Epoch: epoch, User: user, Err: err}
	}
}

func (c *Controller) fetchBoxes(background bool) tea.Cmd {
	c.boxesGen++
	generation := c.boxesGen
	return func() tea.Msg {
		boxes, err := c.boxes.GetBoxes(c.ctx)
		return BoxesLoadedMsg{Generation: generation, Background: background, Boxes: boxes, Err: err}
	}
}

func (c *Controller) fetchBox(id uint, background bool) tea.Cmd {
	c.detailGen++
	generation := c.detailGen
	return func() tea.Msg {
		box, err := c.boxes.GetBox(c.ctx, id)
		if err != nil {
			return BoxLoadedMsg{Generation: generation, Background: background, Err: err}
		}
		items, err := c.items.GetItems(c.ctx, &id)
		return BoxLoadedMsg{Generation: generation, Background: background, Box: box, Items: items, Err: err}
	}
}

func (c *Controller) upload(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	return c.uploads.UploadFile(c.ctx, path)
}

func removeItem(items []models.Item, id uint) []models.Item {
	kept := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}

func removeBox(boxes []models.Box, id uint) []models.Box {
	kept := make([]models.Box, 0, len(boxes))
	for _, box := range boxes {
		if box.ID != id {
			kept = append(kept, box)
		}
	}
	return kept
}

func upsertItem(items []models.Item, item models.Item) []models.Item {
	for i := range items {
		if items[i].ID == item.ID {
			updated := append([]models.Item(nil), items...)
			updated[i] = item
			return updated
		}
	}
	return append(append([]models.Item(nil), items...), item)
}
