package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/helmsman/binding"
	"github.com/jask/helmsman/coordinator"
	"github.com/jask/helmsman/internal/config"
	"github.com/jask/helmsman/internal/demo"
	"github.com/jask/helmsman/store"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	st, err := store.Open(cfg.Database.Path, store.StringCodec())
	if err != nil {
		log.Fatalf("open session store: %v", err)
	}
	defer st.Close()

	// The scheduler routes deferred transition work back through the
	// program loop; the program does not exist yet, so send through a
	// late-bound pointer.
	var program *tea.Program
	send := func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}

	opts := []coordinator.Option{
		coordinator.WithScheduler(binding.NewLoopScheduler(send)),
		coordinator.WithAppName(cfg.UI.AppName),
		coordinator.WithDelays(cfg.Nav.ReplaceDelay(), cfg.Nav.ReleaseDelay()),
	}

	coord, err := st.Load(ctx, demo.SessionName, opts...)
	if errors.Is(err, store.ErrNoSession) {
		coord = coordinator.New(opts...)
	} else if err != nil {
		log.Fatalf("restore session: %v", err)
	}

	app := demo.New(ctx, cfg, coord, demo.Screens(), st)
	program = tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
