package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lvasseur/boxoffice/internal/app"
	"github.com/lvasseur/boxoffice/internal/config"
	"github.com/lvasseur/boxoffice/internal/errmsg"
	"github.com/lvasseur/boxoffice/internal/icons"
	"github.com/lvasseur/boxoffice/internal/platform"
	"github.com/lvasseur/boxoffice/internal/state"
	"github.com/lvasseur/boxoffice/internal/stderr"
)

func run() error {
	// Keep stray writes to fd 2 from corrupting the alt screen
	if err := stderr.Start(); err == nil {
		defer stderr.Stop()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpInitialize, err))
	}
	defer stateMgr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pg, err := platform.Connect(ctx, cfg.DatabaseURL, cfg.OperatorEmail)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpConnect, err))
	}
	defer pg.Close()

	viewer, err := pg.CurrentViewer(ctx)
	if err != nil {
		return fmt.Errorf("%s", errmsg.Format(errmsg.OpViewerLoad, err))
	}

	m := app.New(cfg, stateMgr, pg, viewer)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
