package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/boompa-hearts/internal/card"
	"github.com/palemoky/boompa-hearts/internal/engine"
	"github.com/palemoky/boompa-hearts/internal/table"
	"github.com/palemoky/boompa-hearts/internal/ui/common"
	"github.com/palemoky/boompa-hearts/internal/ui/model"
)

const (
	nameWidth = 12
	seatWidth = 18
)

// TableView renders the four seats around the trick, the score box, the
// local hand and the action control.
func TableView(m model.Model, keyHelp string) string {
	t := m.Engine().Table()
	width := m.Width()

	top := renderSeat(t, t.SeatAt(table.Top))
	left := renderSeat(t, t.SeatAt(table.Left))
	right := renderSeat(t, t.SeatAt(table.Right))
	middle := lipgloss.JoinHorizontal(lipgloss.Center, left, "  ", renderTrick(t), "  ", right)

	var sb strings.Builder
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, renderStatus(t), "  ", top)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, middle))
	sb.WriteString("\n")
	if last := renderLastTrick(t); last != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, last))
		sb.WriteString("\n")
	}
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, renderSeat(t, t.LocalSeat)))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, RenderHand(t.Hand, m.Cursor())))
	sb.WriteString("\n")
	if action := RenderAction(t.Action); action != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, action))
		sb.WriteString("\n")
	}
	if status := statusLine(m); status != "" {
		sb.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, status))
		sb.WriteString("\n")
	}
	sb.WriteString(common.PromptStyle.Render(lipgloss.PlaceHorizontal(width, lipgloss.Center, keyHelp)))

	return sb.String()
}

// RenderCard draws a card face, red or black.
func RenderCard(c card.Card) string {
	style := common.BlackStyle
	if c.Suit.IsRed() {
		style = common.RedStyle
	}
	return style.Render(fmt.Sprintf("%2s%s", c.Rank.String(), c.Suit.Symbol()))
}

func renderSeat(t *table.Table, seat int) string {
	s := t.Seats[seat]
	name := common.TruncateName(s.Name, nameWidth)
	if name == "" {
		name = "(empty)"
	}
	if s.Current {
		name = common.CurrentStyle.Render(common.CurrentMark + " " + name)
	}

	lines := []string{name}
	if seat != t.LocalSeat {
		if n := s.CardCount; n > 0 {
			lines = append(lines, fmt.Sprintf("%s ×%d", common.CardBack, n))
		} else {
			lines = append(lines, common.MutedStyle.Render("no cards"))
		}
	}
	var marks []string
	if s.Traded {
		marks = append(marks, "traded")
	}
	if s.Disconnected {
		marks = append(marks, common.ErrorStyle.Render("away"))
	}
	if len(marks) > 0 {
		lines = append(lines, strings.Join(marks, " "))
	}
	return common.BoxStyle.Width(seatWidth).Render(strings.Join(lines, "\n"))
}

// renderTrick lays the trick in progress out by table position.
func renderTrick(t *table.Table) string {
	slots := map[table.Position]string{}
	for _, p := range t.Trick {
		slots[t.Position(p.Seat)] = RenderCard(p.Card)
	}
	cell := func(pos table.Position) string {
		if s, ok := slots[pos]; ok {
			return s
		}
		return "   "
	}
	grid := lipgloss.JoinVertical(lipgloss.Center,
		cell(table.Top),
		lipgloss.JoinHorizontal(lipgloss.Center, cell(table.Left), "     ", cell(table.Right)),
		cell(table.Bottom),
	)
	return common.BoxStyle.Width(seatWidth).Align(lipgloss.Center).Render(grid)
}

// renderLastTrick shows the previous trick in play order with the winning
// card marked.
func renderLastTrick(t *table.Table) string {
	last := t.LastTrick
	if last == nil || len(last.Plays) == 0 {
		return ""
	}
	cards := make([]string, len(last.Plays))
	for i, p := range last.Plays {
		cards[i] = RenderCard(p.Card)
		if i == last.WinningIndex {
			cards[i] = common.SelectedStyle.Render("[") + cards[i] + common.SelectedStyle.Render("]")
		}
	}
	winner := common.TruncateName(t.Seats[last.Winner].Name, nameWidth)
	return common.MutedStyle.Render("Last trick: ") + strings.Join(cards, " ") +
		common.MutedStyle.Render(" → "+winner)
}

func renderStatus(t *table.Table) string {
	var sb strings.Builder
	if t.HandNum > 0 {
		dir := engine.TradeDirectionFor(t.HandNum)
		fmt.Fprintf(&sb, "Hand %d  %s %s\n", t.HandNum, dir.Arrow(), dir)
	} else {
		sb.WriteString(string(t.Stage) + "\n")
	}
	us := t.LocalPartnership()
	for _, p := range []int{us, 1 - us} {
		label := t.PartnershipNames(p)
		if p == us {
			label = common.TitleStyle(label)
		}
		mark := " "
		if t.TookPoint[p] {
			mark = common.RedStyle.Render(common.HeartMark)
		}
		fmt.Fprintf(&sb, "%s %s\n  score %d  tricks %d\n", mark, label, t.Scores[p], t.Tricks[p])
	}
	if t.HeartsBroken {
		sb.WriteString(common.RedStyle.Render(common.HeartMark) + " broken")
	}
	return common.BoxStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

// RenderHand draws the local hand: selected cards are raised, hidden cards
// greyed and the cursor marked underneath.
func RenderHand(hand []table.HandCard, cursor int) string {
	if len(hand) == 0 {
		return common.BoxStyle.Render(common.MutedStyle.Render("(no cards)"))
	}

	var raised, faces, under strings.Builder
	for i, h := range hand {
		face := RenderCard(h.Card)
		switch {
		case h.Hidden, h.Disabled:
			face = common.GrayStyle.Render(fmt.Sprintf("%2s%s", h.Rank.String(), h.Suit.Symbol()))
		case h.Fresh:
			face = common.FreshStyle.Render(fmt.Sprintf("%2s%s", h.Rank.String(), h.Suit.Symbol()))
		}
		mark := "   "
		if h.Selected && !h.Hidden {
			mark = common.SelectedStyle.Render(" ▼ ")
		}
		pointer := "   "
		if i == cursor {
			pointer = common.CursorStyle.Render(" ^ ")
		}
		raised.WriteString(mark + " ")
		faces.WriteString(face + " ")
		under.WriteString(pointer + " ")
	}

	title := fmt.Sprintf("Your hand (%d)", len(hand))
	content := lipgloss.JoinVertical(lipgloss.Left, title, raised.String(), faces.String(), under.String())
	return common.BoxStyle.Render(content)
}

// RenderAction draws the Trade/Play control; empty when hidden.
func RenderAction(a table.Action) string {
	if !a.Visible {
		return ""
	}
	if a.Enabled {
		return common.ButtonStyle.Render(a.Label)
	}
	return common.DisabledStyle.Render(a.Label)
}
