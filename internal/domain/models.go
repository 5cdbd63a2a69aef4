package domain

// Story is the content of one carousel panel
type Story struct {
	Title  string `toml:"title"`
	Body   string `toml:"body"`
	Author string `toml:"author,omitempty"`
	Color  string `toml:"color,omitempty"` // lipgloss color for the panel border
}

// PlaybackState describes whether a story is currently being shown
type PlaybackState int

const (
	Paused PlaybackState = iota
	Playing
)

func (s PlaybackState) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}
