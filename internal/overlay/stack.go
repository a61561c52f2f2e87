// Package overlay implements the layered message stack drawn over the table:
// one visible entry plus a stack of hidden entries waiting to resurface.
package overlay

import "slices"

// Category tags an entry so it can be dismissed by kind.
type Category string

const (
	Alert        Category = "alert"
	Help         Category = "help"
	Paused       Category = "paused"
	Waiting      Category = "waiting"
	Ended        Category = "ended"
	Error        Category = "error"
	TextPrompt   Category = "text_prompt"
	ChoicePrompt Category = "mc_prompt"
	Fatal        Category = "fatal"
)

// Content is anything the renderer can draw inside an overlay box.
type Content interface {
	Render(width int) string
}

// Text is plain overlay content.
type Text string

func (t Text) Render(int) string { return string(t) }

// Entry is one overlay message.
type Entry struct {
	Category Category
	Content  Content
}

// Stack holds at most one visible entry; hidden entries are kept bottom to top.
// The zero value is an empty, hidden stack.
type Stack struct {
	visible *Entry
	hidden  []Entry
}

// NewStack returns an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Show makes a new entry visible, pushing the current one (if any) onto the
// hidden stack. Entries of the same category may repeat.
func (s *Stack) Show(category Category, content Content) {
	if s.visible != nil {
		s.hidden = append(s.hidden, *s.visible)
	}
	s.visible = &Entry{Category: category, Content: content}
}

// Dismiss removes entries of category. With all=false only the nearest entry
// goes: the visible one when it matches, else the topmost hidden match. With
// all=true every entry of the category goes. When the visible entry is
// removed, the top hidden entry is promoted.
func (s *Stack) Dismiss(category Category, all bool) {
	matched := s.visible != nil && s.visible.Category == category
	if matched {
		s.visible = nil
		if all {
			for n := len(s.hidden); n > 0 && s.hidden[n-1].Category == category; n-- {
				s.hidden = s.hidden[:n-1]
			}
		}
		s.promote()
	}

	if matched && !all {
		return
	}
	for i := len(s.hidden) - 1; i >= 0; i-- {
		if s.hidden[i].Category != category {
			continue
		}
		s.hidden = slices.Delete(s.hidden, i, i+1)
		if !all {
			return
		}
	}
}

// DismissNearest removes the nearest entry of category.
func (s *Stack) DismissNearest(category Category) { s.Dismiss(category, false) }

// DismissEvery removes every entry of category.
func (s *Stack) DismissEvery(category Category) { s.Dismiss(category, true) }

// DismissAll empties the stack and hides the container.
func (s *Stack) DismissAll() {
	s.visible = nil
	s.hidden = nil
}

func (s *Stack) promote() {
	n := len(s.hidden)
	if n == 0 {
		return
	}
	top := s.hidden[n-1]
	s.hidden = s.hidden[:n-1]
	s.visible = &top
}

// Visible returns the visible entry.
func (s *Stack) Visible() (Entry, bool) {
	if s.visible == nil {
		return Entry{}, false
	}
	return *s.visible, true
}

// IsVisible reports whether the visible entry has category.
func (s *Stack) IsVisible(category Category) bool {
	return s.visible != nil && s.visible.Category == category
}

// Contains reports whether any entry, visible or hidden, has category.
func (s *Stack) Contains(category Category) bool {
	if s.IsVisible(category) {
		return true
	}
	return slices.ContainsFunc(s.hidden, func(e Entry) bool { return e.Category == category })
}

// Hidden returns a copy of the hidden entries, bottom to top.
func (s *Stack) Hidden() []Entry {
	return slices.Clone(s.hidden)
}

// Shown reports whether the overlay container is displayed.
func (s *Stack) Shown() bool {
	return s.visible != nil
}

// Len counts every entry, visible and hidden.
func (s *Stack) Len() int {
	if s.visible == nil {
		return len(s.hidden)
	}
	return len(s.hidden) + 1
}
