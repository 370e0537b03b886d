package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/romycode/xx"
	"github.com/romycode/xx/buffer"
	"github.com/romycode/xx/editor"
	"github.com/romycode/xx/internal/config"
	"github.com/romycode/xx/internal/logging"
)

var (
	configPath  = flag.String("config", defaultConfigPath(), "Path to the YAML config file.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Print(xx.BuildInfo())
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "xx: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if cfg.Log.Enabled {
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return err
		}
		if err := logging.Initialize(cfg.Log.Dir, level); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Close()
	}
	log := logging.Logger()

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	edits := 0
	ecfg, err := editorConfig(cfg, log, func(ev editor.ChangeEvent) {
		if ev.Change.Kind != buffer.ChangeMove {
			edits++
		}
	})
	if err != nil {
		return err
	}

	log.Info("session started", slog.String("version", xx.VersionTag()), slog.String("commit", xx.Commit), slog.String("config", path))
	p := tea.NewProgram(app{editor: editor.New(ecfg)}, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	log.Info("session ended", slog.Int("edits", edits))
	return nil
}

// editorConfig maps the file configuration onto the editor component.
func editorConfig(cfg config.Config, log *slog.Logger, onChange func(editor.ChangeEvent)) (editor.Config, error) {
	km := editor.DefaultKeyMap()

	actions := make([]string, 0, len(cfg.Keys))
	for action := range cfg.Keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if !km.Rebind(action, cfg.Keys[action]...) {
			return editor.Config{}, fmt.Errorf("keys.%s: unknown action", action)
		}
	}

	return editor.Config{
		Text:         cfg.InitialText,
		ShowLineNums: cfg.ShowLineNumbers,
		ShowStatus:   cfg.ShowStatus,
		Style:        editor.DefaultStyle(),
		KeyMap:       km,
		OnChange:     onChange,
		Logger:       log,
	}, nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "xx", "config.yaml")
}
