// Package ui composes the motioncat TUI with Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update, view (Elm-style)
//   - ViewStack: stack-based navigation (catalog at the bottom, the open
//     example above it)
//   - Overlay: popup views with a dismiss key (the help modal)
//   - KeybindRegistry / KeyHandler: spacemacs-style leader key commands
//   - Theme: lipgloss styles shared by the catalog and every example
//
// Each example screen owns ephemeral local state created on push and
// discarded on pop; nothing is shared between examples.
package ui
