package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/livemark/internal/config"
	"github.com/xonecas/livemark/internal/history"
	"github.com/xonecas/livemark/internal/tui"
)

// runEdit opens the editor on path, defaulting to the scratch file in the
// data directory. A missing file starts an empty buffer.
func runEdit(a *app, path string) error {
	if path == "" {
		dir, err := config.EnsureDataDir()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, "scratch.md")
	}
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	store := openStore(a)
	defer store.Close()

	p := tea.NewProgram(
		tui.New(a.cfg, path, string(raw), store),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

// openStore opens the snapshot store. A nil store disables history rather
// than blocking editing.
func openStore(a *app) *history.Store {
	dbPath, err := a.cfg.HistoryDBPath()
	if err != nil {
		log.Warn().Err(err).Msg("history disabled")
		return nil
	}
	store, err := history.Open(dbPath, a.cfg.History.KeepOrDefault())
	if err != nil {
		log.Warn().Err(err).Msg("history disabled")
		return nil
	}
	return store
}
