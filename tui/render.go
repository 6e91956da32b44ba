package tui

import (
	"strings"

	"guestevents/views"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// RenderSignIn renders the phone entry or code entry step.
func RenderSignIn(v views.SignIn, input textinput.Model, busy string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Sign-In"))
	b.WriteString("\n\n")

	if v.Error != "" {
		b.WriteString(ErrorStyle.Render(v.Error))
		b.WriteString("\n\n")
	}

	b.WriteString(InputStyle.Render(input.View()))
	b.WriteString("\n\n")

	if busy != "" {
		b.WriteString(SpinnerStyle.Render(busy))
		b.WriteString(" ")
	}

	action := "Send OTP"
	if v.Step == views.StepCode {
		action = "Verify OTP"
	}
	if v.CanSubmit {
		b.WriteString(RenderKeyBinding("enter", action))
	} else {
		b.WriteString(DimmedStyle.Render("enter: " + action))
	}
	b.WriteString("  ")
	b.WriteString(RenderKeyBinding("ctrl+c", "quit"))

	return b.String()
}

// RenderList renders the upcoming event list
func RenderList(v views.List, cursor int, width int, busy string) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Upcoming Events"))
	b.WriteString("\n\n")

	if len(v.Rows) == 0 {
		if busy != "" {
			b.WriteString(SpinnerStyle.Render(busy) + " Loading events...")
		} else {
			b.WriteString(DimmedStyle.Render("No upcoming events."))
		}
		b.WriteString("\n\n")
	}

	cardWidth := width - 4
	if width <= 0 {
		cardWidth = defaultWidth - 4
	}

	for i, row := range v.Rows {
		body := EventNameStyle.Render(row.Name) + "\n" +
			DimmedStyle.Render("Organizer: "+row.Organizer) + "\n" +
			DimmedStyle.Render("City: "+row.City)

		style := CardStyle
		prefix := NoCursor()
		if i == cursor {
			style = SelectedCardStyle
			prefix = Cursor()
		}
		card := style.Width(cardWidth).Render(body)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, prefix, card))
		b.WriteString("\n")
	}

	if busy != "" && len(v.Rows) > 0 {
		b.WriteString(SpinnerStyle.Render(busy) + " Loading event details...\n")
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("↑/↓: Navigate  Enter: View details  q: Quit"))

	return b.String()
}

// RenderDetail renders a single event with its fallbacks already applied.
func RenderDetail(v views.Detail, width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Event Details"))
	b.WriteString("\n\n")

	b.WriteString(DimmedStyle.Render("Image: " + v.ImageURL))
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(LabelStyle.Render(label))
		b.WriteString(" ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Event Name:", v.Name)
	field("Description:", v.Description)
	field("Venue:", v.Venue)
	field("Date:", v.Dates)
	field("City:", v.City)

	b.WriteString(LabelStyle.Render("Event Map:"))
	b.WriteString(" ")
	if v.HasMap {
		b.WriteString(LinkStyle.Render("View on Map"))
	} else {
		b.WriteString(DimmedStyle.Render("View on Map"))
	}
	b.WriteString("\n\n")

	b.WriteString(RenderSeparator(width))
	b.WriteString("\n")
	help := RenderKeyBinding("esc", "back to events")
	if v.HasMap {
		help += "  " + RenderKeyBinding("m", "open map")
	}
	help += "  " + RenderKeyBinding("q", "quit")
	b.WriteString(help)

	return b.String()
}
