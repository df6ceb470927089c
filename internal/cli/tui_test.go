package cli

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m fileListModel, keys ...string) fileListModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(fileListModel)
	}
	return m
}

func TestFileListSelection(t *testing.T) {
	files := []string{"a.stp", "b.stp", "c.stp"}

	tests := []struct {
		name string
		keys []string
		want []string
	}{
		{"enter picks cursor", []string{"down", "enter"}, []string{"b.stp"}},
		{"toggle several", []string{"x", "down", "down", "x", "enter"}, []string{"a.stp", "c.stp"}},
		{"toggle twice clears", []string{"x", "x", "down", "enter"}, []string{"b.stp"}},
		{"select all", []string{"a", "enter"}, files},
		{"select all twice clears", []string{"a", "a", "enter"}, []string{"a.stp"}},
		{"cursor stops at bounds", []string{"up", "down", "down", "down", "down", "enter"}, []string{"c.stp"}},
		{"vim keys", []string{"j", "j", "k", "enter"}, []string{"b.stp"}},
		{"quit selects nothing", []string{"x", "q"}, nil},
		{"esc selects nothing", []string{"esc"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newFileListModel(files), tt.keys...)
			if got := m.Selected(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFileListScrolls(t *testing.T) {
	files := make([]string, 20)
	for i := range files {
		files[i] = strings.Repeat("f", i+1) + ".stp"
	}
	m := newFileListModel(files)
	m.Height = 5

	for range 7 {
		m = press(m, "down")
	}
	if m.Cursor != 7 || m.Offset != 3 {
		t.Errorf("Cursor, Offset = %d, %d; want 7, 3", m.Cursor, m.Offset)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	if got := next.(fileListModel).Height; got != 5 {
		t.Errorf("Height after small window = %d, want 5", got)
	}
}

func TestFileListView(t *testing.T) {
	m := press(newFileListModel([]string{"data/a.stp", "data/b.stp"}), "x")
	view := m.View()

	for _, want := range []string{"Select STP Files", "a.stp", "[x]", "[ ]", "1 selected"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
