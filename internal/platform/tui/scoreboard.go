package tui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores   = 10 // Rows shown on the board
	tableHeight = maxScores + 1
)

// topScores returns the best runs of this session, highest first. The store
// is preferred; the in-memory history is the fallback when it is missing or
// fails.
func topScores(store *storage.Store, history *starcatch.HighScores, limit int) []storage.ScoreEntry {
	if store != nil {
		if entries, err := store.TopScores(limit); err == nil {
			return entries
		}
	}
	if history == nil {
		return nil
	}

	scores := history.History()
	entries := make([]storage.ScoreEntry, len(scores))
	for i, s := range scores {
		entries[i] = storage.ScoreEntry{ID: int64(i + 1), Score: int(s)}
	}
	slices.SortStableFunc(entries, func(a, b storage.ScoreEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// newScoreTable creates the high-score table.
func newScoreTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Run", Width: 6},
		{Title: "Time", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(tableHeight),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// scoreRows converts entries to table rows.
func scoreRows(entries []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		when := "-"
		if !e.CreatedAt.IsZero() {
			when = e.CreatedAt.Local().Format("15:04:05")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.ID),
			when,
		}
	}
	return rows
}

// renderScoreboard renders the table inside a border, or a hint when empty.
func renderScoreboard(t table.Model, empty bool) string {
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No runs recorded yet.\nCatch some stars!")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return tableStyle.Render(t.View())
}
