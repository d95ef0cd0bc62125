package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeCatalog AppMode = iota
	ModeExample
)

func (m AppMode) String() string {
	switch m {
	case ModeCatalog:
		return "Catalog"
	case ModeExample:
		return "Example"
	default:
		return "Unknown"
	}
}
