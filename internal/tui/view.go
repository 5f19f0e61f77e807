package tui

import (
	"MyStorage/internal/models"
	"MyStorage/internal/state"
	"fmt"
	"strings"
)

func (m *Model) View() string {
	var body string
	switch m.controller.Screen() {
	case state.ScreenLogin:
		body = m.viewLogin()
	case state.ScreenRegister:
		body = m.viewRegister()
	case state.ScreenBoxes:
		body = m.viewBoxes()
	case state.ScreenBoxDetail:
		body = m.viewBoxDetail()
	case state.ScreenAddBox:
		body = m.viewAddBox()
	case state.ScreenAddItem:
		body = m.viewItemForm("New item")
	case state.ScreenEditItem:
		body = m.viewItemForm("Edit item")
	}
	if m.controller.Busy() {
		body += "\n" + subtleStyle.Render("Working...")
	}
	if m.confirm != nil {
		body += "\n" + noticeStyle.Render(m.confirm.question)
	}
	if notice := m.controller.Notice(); notice != "" {
		body += "\n" + noticeStyle.Render(notice+"\n"+helpStyle.Render("press any key"))
	}
	return appStyle.Render(body)
}

func (m *Model) header() string {
	user := "guest"
	if u := m.controller.User(); u != nil && u.Username != "" {
		user = u.Username
	}
	return titleStyle.Render("MyStorage") + "  " + subtleStyle.Render(user) + "\n\n"
}

func (m *Model) viewLogin() string {
	return titleStyle.Render("MyStorage") + "\n" +
		subtleStyle.Render("Your personal storage closet") + "\n\n" +
		m.loginForm.View() + "\n" +
		helpStyle.Render("enter log in • tab next field • ctrl+r create an account • ctrl+c quit")
}

func (m *Model) viewRegister() string {
	return titleStyle.Render("Create an account") + "\n\n" +
		m.registerForm.View() + "\n" +
		helpStyle.Render("enter register • tab next field • esc back to login")
}

func (m *Model) viewBoxes() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString(titleStyle.Render("My boxes") + "\n")
	boxes := m.controller.Boxes()
	if len(boxes) == 0 {
		b.WriteString(subtleStyle.Render("No boxes yet. Press n to add one.") + "\n")
	}
	for i, box := range boxes {
		line := fmt.Sprintf("%s  %s  %s", box.Name, subtleStyle.Render(box.Location), itemCount(box.ItemCount()))
		if box.Shared {
			line += "  " + sharedStyle.Render("shared")
		}
		b.WriteString(m.row(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move • enter open • n new box • r refresh • L log out • q quit"))
	return b.String()
}

func (m *Model) viewBoxDetail() string {
	var b strings.Builder
	b.WriteString(m.header())
	box := m.controller.CurrentBox()
	if box == nil {
		return b.String() + subtleStyle.Render("Loading...")
	}
	name := box.Name
	if name == "" {
		name = fmt.Sprintf("Box #%d", box.ID)
	}
	b.WriteString(titleStyle.Render(name))
	if box.Shared {
		b.WriteString("  " + sharedStyle.Render("shared with you"))
	}
	b.WriteString("\n")
	for _, detail := range [][2]string{
		{"Description", box.Description},
		{"Location", box.Location},
		{"QR code", box.QRCode},
		{"Photo", box.PhotoURL},
	} {
		if detail[1] != "" {
			b.WriteString(labelStyle.Render(detail[0]) + detail[1] + "\n")
		}
	}
	b.WriteString("\n")

	switch m.prompt {
	case promptSearch:
		b.WriteString(labelStyle.Render("Search") + m.promptInput.View() + "\n")
	case promptShare:
		b.WriteString(labelStyle.Render("Share with") + m.promptInput.View() + "\n")
	default:
		if term := m.controller.Search(); term != "" {
			b.WriteString(labelStyle.Render("Search") + term + "\n")
		}
	}

	items := m.controller.VisibleItems()
	b.WriteString(titleStyle.Render(fmt.Sprintf("Items (%d)", len(items))) + "\n")
	if len(items) == 0 {
		b.WriteString(subtleStyle.Render("Nothing here.") + "\n")
	}
	for i, item := range items {
		line := fmt.Sprintf("%s  %s", item.Name, subtleStyle.Render(models.Category(item.Category).Label()))
		if item.Description != "" {
			line += "  " + item.Description
		}
		b.WriteString(m.row(i, line))
	}
	b.WriteString("\n" + helpStyle.Render("a add • e edit • d delete • / search • s share • x delete box • esc back"))
	return b.String()
}

func (m *Model) viewAddBox() string {
	return m.header() + titleStyle.Render("New box") + "\n\n" +
		m.boxForm.View() + "\n" +
		helpStyle.Render("enter save • tab next field • esc cancel")
}

func (m *Model) viewItemForm(title string) string {
	where := ""
	if box := m.controller.CurrentBox(); box != nil && box.Name != "" {
		where = subtleStyle.Render(" in " + box.Name)
	}
	return m.header() + titleStyle.Render(title) + where + "\n\n" +
		m.itemForm.View() + "\n" +
		helpStyle.Render("enter save • tab next field • esc cancel")
}

func (m *Model) row(index int, line string) string {
	if index == m.cursor {
		return selectedStyle.Render("▸ ") + line + "\n"
	}
	return "  " + line + "\n"
}

func itemCount(n int) string {
	if n == 1 {
		return "1 item"
	}
	return fmt.Sprintf("%d items", n)
}
