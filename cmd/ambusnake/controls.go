package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"ambusnake/internal/game"
)

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Print the game controls",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(renderControls())
	},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Width(10)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
)

func renderControls() string {
	rows := []struct{ key, action string }{
		{"Arrows", "start, then turn"},
		{"P", "pause"},
		{"Escape", "quit"},
		{"Enter", "close a message"},
		{"Space", "close a message"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(game.Title))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(keyStyle.Render(r.key) + helpStyle.Render(r.action) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("Bonuses move you up a level: easy, medium, hard, insane."))
	return cardStyle.Render(b.String())
}

func renderSummary(s game.Snapshot) string {
	best := s.BestScore
	if s.Score > best {
		best = s.Score
	}
	lines := []string{
		titleStyle.Render(game.Title),
		"",
		keyStyle.Render("Games") + helpStyle.Render(fmt.Sprint(s.GamesPlayed)),
		keyStyle.Render("Best") + helpStyle.Render(fmt.Sprint(best)),
		keyStyle.Render("Level") + helpStyle.Render(s.Level.String()),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
