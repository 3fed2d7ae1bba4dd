package skycave

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the management system application using the given database and
// optional options. Blocks until the user quits.
func Run(db Database, options ...Option) error {
	prog := tea.NewProgram(New(db, options...), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("bubbletea.NewProgram().Run(): %w", err)
	}
	return nil
}
