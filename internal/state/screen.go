package state

import "fmt"

type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenBoxes
	ScreenBoxDetail
	ScreenAddItem
	ScreenAddBox
	ScreenEditItem
)

// Screens lists every screen; renderers switch over all of them.
var Screens = []Screen{
	ScreenLogin,
	ScreenRegister,
	ScreenBoxes,
	ScreenBoxDetail,
	ScreenAddItem,
	ScreenAddBox,
	ScreenEditItem,
}

var transitions = map[Screen][]Screen{
	ScreenLogin:     {ScreenBoxes, ScreenRegister},
	ScreenRegister:  {ScreenLogin, ScreenBoxes},
	ScreenBoxes:     {ScreenBoxDetail, ScreenAddBox},
	ScreenBoxDetail: {ScreenBoxes, ScreenAddItem, ScreenEditItem},
	ScreenAddItem:   {ScreenBoxDetail},
	ScreenEditItem:  {ScreenBoxDetail},
	ScreenAddBox:    {ScreenBoxes},
}

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenBoxes:
		return "boxes"
	case ScreenBoxDetail:
		return "boxDetail"
	case ScreenAddItem:
		return "addItem"
	case ScreenAddBox:
		return "addBox"
	case ScreenEditItem:
		return "editItem"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// CanGo reports whether to is reachable from s. Login is reachable from
// anywhere because a lost session forces it.
func (s Screen) CanGo(to Screen) bool {
	if to == ScreenLogin || to == s {
		return true
	}
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Authenticated reports whether the screen needs a session.
func (s Screen) Authenticated() bool {
	return s != ScreenLogin && s != ScreenRegister
}
