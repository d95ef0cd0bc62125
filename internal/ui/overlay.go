package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a view floated above the screen stack, like the help
// modal, paired with the key that closes it.
type Overlay struct {
	View    View
	Dismiss string // key string as tea.KeyMsg.String() reports it
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack holds floating overlays. Only the topmost one sees
// input; everything below waits.
type OverlayStack struct {
	Stack []Overlay
}

// Push puts o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay, false when empty.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the stack depth.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop feeds msg to the topmost overlay and stores the view it
// returns. The second result is false when the stack is empty.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}
