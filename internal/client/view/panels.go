package view

// Panel is a top-level region of the UI.
type Panel int

const (
	AllStories Panel = iota
	Submit
	Favorites
	MyStories
	AuthForms
	Profile

	panelCount
)

var panelNames = [panelCount]string{
	AllStories: "all-stories",
	Submit:     "submit",
	Favorites:  "favorites",
	MyStories:  "my-stories",
	AuthForms:  "auth-forms",
	Profile:    "profile",
}

func (p Panel) String() string {
	if p < 0 || p >= panelCount {
		return "unknown"
	}
	return panelNames[p]
}

// Panels lists all panels in display order.
func Panels() []Panel {
	out := make([]Panel, 0, panelCount)
	for p := Panel(0); p < panelCount; p++ {
		out = append(out, p)
	}
	return out
}

const (
	noStoriesMsg   = "No stories added!"
	noFavoritesMsg = "No favorites added!"
)

// Row is one rendered story inside a panel.
type Row struct {
	Story    *Story
	Own      bool
	Favorite bool
	Markup   string
}

// PanelView is the rendered content of a panel. Empty holds the empty-state
// message when the panel has no rows; Body holds non-list content.
type PanelView struct {
	Panel Panel
	Rows  []Row
	Empty string
	Body  string
}

type panelState struct {
	rows  []Row
	empty string
	body  string
}

func (s *panelState) reset() {
	s.rows, s.empty, s.body = nil, "", ""
}
