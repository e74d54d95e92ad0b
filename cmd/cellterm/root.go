// ABOUTME: Root cobra command: global flags, config loading, log and theme setup
// ABOUTME: Runs the demo screen when no subcommand is given

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mauromedda/cellterm/internal/config"
	"github.com/mauromedda/cellterm/internal/log"
	"github.com/mauromedda/cellterm/pkg/tui/terminal"
	"github.com/mauromedda/cellterm/pkg/tui/theme"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	themeName  string
	logFile    string
	verbose    bool

	cfg       *config.Config
	themePath string // empty for builtin themes
	logCloser io.Closer

	// newTerminal opens the terminal the interactive commands draw on.
	newTerminal func() (terminal.Terminal, error)
}

func newApp() *app {
	return &app{newTerminal: openProcessTerminal}
}

func openProcessTerminal() (terminal.Terminal, error) {
	t := terminal.NewProcessTerminal()
	if !t.IsTerminal() {
		return nil, errors.New("stdin and stdout must be a terminal")
	}
	return t, nil
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cellterm",
		Short:         "Positioned, styled text elements on a character-cell terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.ConfigFile(), "Config file path")
	cmd.PersistentFlags().StringVar(&a.themeName, "theme", "", "Theme name or YAML theme file (overrides config)")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Log file path (overrides config)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newKeysCmd(a))
	cmd.AddCommand(newColorsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setup loads the config, then configures logging and the active theme.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.themeName != "" {
		cfg.Theme = a.themeName
	}
	if a.logFile != "" {
		cfg.Log.File = a.logFile
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	a.cfg = cfg

	closer, err := log.Setup(log.Options{
		File:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.logCloser = closer

	t, path, err := resolveTheme(cfg.Theme)
	if err != nil {
		return err
	}
	theme.Set(t)
	a.themePath = path
	log.Info("cellterm %s starting: config=%s theme=%s", version, a.configPath, t.Name)
	return nil
}

func (a *app) teardown() error {
	if a.logCloser == nil {
		return nil
	}
	log.SetOutput(io.Discard, false)
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// resolveTheme returns the builtin theme called name, or loads it from
// a file: name itself, else name.yaml under the themes directory. The
// returned path is empty for builtins.
func resolveTheme(name string) (*theme.Theme, string, error) {
	if t, ok := theme.Builtin(name); ok {
		return t, "", nil
	}
	path := name
	if _, err := os.Stat(path); err != nil {
		if alt := filepath.Join(config.ThemesDir(), name+".yaml"); fileExists(alt) {
			path = alt
		}
	}
	t, err := theme.Resolve(path)
	if err != nil {
		return nil, "", fmt.Errorf("loading theme %q: %w", name, err)
	}
	return t, path, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
