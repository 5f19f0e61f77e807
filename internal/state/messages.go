package state

import "MyStorage/internal/models"

// SyncTickMsg asks for a background refresh.
type SyncTickMsg struct{}

// SessionEndedMsg is delivered when the session token disappears.
type SessionEndedMsg struct{}

type LoggedInMsg struct {
	Epoch uint64
	Err   error
}

type RegisteredMsg struct {
	Epoch uint64
	User  *models.User
	Err   error
}

type UserLoadedMsg struct {
	Epoch uint64
	User  *models.User
	Err   error
}

type BoxesLoadedMsg struct {
	Generation uint64
	Background bool
	Boxes      []models.Box
	Err        error
}

type BoxLoadedMsg struct {
	Generation uint64
	Background bool
	Box        *models.Box
	Items      []models.Item
	Err        error
}

type BoxSavedMsg struct {
	Epoch uint64
	Box   *models.Box
	Err   error
}

type BoxDeletedMsg struct {
	Epoch uint64
	BoxID uint
	Err   error
}

type BoxSharedMsg struct {
	Epoch uint64
	BoxID uint
	Email string
	Err   error
}

type ItemSavedMsg struct {
	Epoch   uint64
	Item    *models.Item
	Created bool
	Err     error
}

type ItemDeletedMsg struct {
	Epoch  uint64
	ItemID uint
	Err    error
}
