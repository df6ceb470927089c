package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listChosenStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// fileListModel - Interactive input selection
// =============================================================================

// fileListModel is the bubbletea model behind convert --select. Space
// toggles a file, enter confirms. Confirming with nothing toggled picks the
// file under the cursor.
type fileListModel struct {
	Files     []string
	Cursor    int
	Chosen    map[int]bool
	Confirmed bool
	Height    int
	Offset    int
}

func newFileListModel(files []string) fileListModel {
	return fileListModel{
		Files:  files,
		Chosen: make(map[int]bool),
		Height: 15,
	}
}

// Selected returns the chosen files in list order, or nil if the picker was
// left without confirming.
func (m fileListModel) Selected() []string {
	if !m.Confirmed {
		return nil
	}
	var out []string
	for i, f := range m.Files {
		if m.Chosen[i] {
			out = append(out, f)
		}
	}
	return out
}

func (m fileListModel) Init() tea.Cmd {
	return nil
}

func (m fileListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Files)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "space", "x":
			m.Chosen = toggled(m.Chosen, m.Cursor)
		case "a":
			all := len(m.Files) > 0 && m.chosenCount() == len(m.Files)
			m.Chosen = make(map[int]bool, len(m.Files))
			if !all {
				for i := range m.Files {
					m.Chosen[i] = true
				}
			}
		case "enter":
			if len(m.Files) == 0 {
				return m, tea.Quit
			}
			if m.chosenCount() == 0 {
				m.Chosen = map[int]bool{m.Cursor: true}
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

// toggled copies chosen with i flipped, so earlier model values stay intact.
func toggled(chosen map[int]bool, i int) map[int]bool {
	out := make(map[int]bool, len(chosen)+1)
	for k, v := range chosen {
		out[k] = v
	}
	if out[i] {
		delete(out, i)
	} else {
		out[i] = true
	}
	return out
}

func (m fileListModel) chosenCount() int {
	n := 0
	for _, v := range m.Chosen {
		if v {
			n++
		}
	}
	return n
}

func (m fileListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select STP Files"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ convert  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Files))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Chosen[i] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor, mark, filepath.Base(m.Files[i]), filepath.Dir(m.Files[i])})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "", "File", "Directory").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			idx := m.Offset + row
			switch {
			case idx == m.Cursor:
				return listSelectedStyle
			case m.Chosen[idx]:
				return listChosenStyle
			case col == 3:
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.Files), m.chosenCount())))

	return b.String()
}
