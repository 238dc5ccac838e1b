package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	// Navigation
	Up       Key
	Down     Key
	PrevPage Key
	NextPage Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Search  Key
	Sort    Key
	Genres  Key
	Clear   Key
	Retry   Key

	// Function keys for module navigation
	F1  Key
	F2  Key
	F3  Key
	F10 Key
}

// Key represents a key binding.
type Key struct {
	Keys    []string
	Help    string
	Enabled bool
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: Key{
			Keys:    []string{"up", "k"},
			Help:    "up",
			Enabled: true,
		},
		Down: Key{
			Keys:    []string{"down", "j"},
			Help:    "down",
			Enabled: true,
		},
		PrevPage: Key{
			Keys:    []string{"left", "h", "pgup"},
			Help:    "prev page",
			Enabled: true,
		},
		NextPage: Key{
			Keys:    []string{"right", "l", "pgdown"},
			Help:    "next page",
			Enabled: true,
		},

		Select: Key{
			Keys:    []string{"enter"},
			Help:    "select",
			Enabled: true,
		},
		Back: Key{
			Keys:    []string{"esc"},
			Help:    "back",
			Enabled: true,
		},
		Quit: Key{
			Keys:    []string{"q", "ctrl+c"},
			Help:    "quit",
			Enabled: true,
		},
		Help: Key{
			Keys:    []string{"?"},
			Help:    "help",
			Enabled: true,
		},
		Search: Key{
			Keys:    []string{"/", "s"},
			Help:    "search",
			Enabled: true,
		},
		Sort: Key{
			Keys:    []string{"o"},
			Help:    "sort order",
			Enabled: true,
		},
		Genres: Key{
			Keys:    []string{"g"},
			Help:    "genre filter",
			Enabled: true,
		},
		Clear: Key{
			Keys:    []string{"c"},
			Help:    "clear filters",
			Enabled: true,
		},
		Retry: Key{
			Keys:    []string{"r"},
			Help:    "retry",
			Enabled: true,
		},

		F1: Key{
			Keys:    []string{"f1"},
			Help:    "Help",
			Enabled: true,
		},
		F2: Key{
			Keys:    []string{"f2"},
			Help:    "Browse",
			Enabled: true,
		},
		F3: Key{
			Keys:    []string{"f3"},
			Help:    "Genres",
			Enabled: true,
		},
		F10: Key{
			Keys:    []string{"f10"},
			Help:    "Quit",
			Enabled: true,
		},
	}
}

// Matches checks if a key message matches this key binding.
func (k Key) Matches(msg tea.KeyMsg) bool {
	if !k.Enabled {
		return false
	}

	keyStr := msg.String()
	for _, key := range k.Keys {
		if keyStr == key {
			return true
		}
	}
	return false
}

// MatchesAny checks if a key message matches any of the provided key bindings.
func MatchesAny(msg tea.KeyMsg, keys ...Key) bool {
	for _, k := range keys {
		if k.Matches(msg) {
			return true
		}
	}
	return false
}

// IsQuit checks if the key message is a quit command.
func (km KeyMap) IsQuit(msg tea.KeyMsg) bool {
	return km.Quit.Matches(msg) || km.F10.Matches(msg)
}

// IsFunctionKey checks if the key message is a function key.
func (km KeyMap) IsFunctionKey(msg tea.KeyMsg) bool {
	return MatchesAny(msg, km.F1, km.F2, km.F3, km.F10)
}

// GetFunctionKeyModule returns the module name for a function key.
func (km KeyMap) GetFunctionKeyModule(msg tea.KeyMsg) string {
	switch {
	case km.F1.Matches(msg):
		return "help"
	case km.F2.Matches(msg):
		return "browse"
	case km.F3.Matches(msg):
		return "genres"
	case km.F10.Matches(msg):
		return "quit"
	default:
		return ""
	}
}

// StatusBarHelp returns the help text for the status bar.
func (km KeyMap) StatusBarHelp() string {
	return "[F1]Help [F2]Browse [F3]Genres [/]Search [o]Sort [g]Filter [F10]Quit"
}
