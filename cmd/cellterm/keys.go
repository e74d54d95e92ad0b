// ABOUTME: keys subcommand: echoes every decoded key as a flow-positioned line
// ABOUTME: Useful for checking escape sequence decoding and key bindings

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mauromedda/cellterm/internal/config"
	"github.com/mauromedda/cellterm/internal/log"
	"github.com/mauromedda/cellterm/pkg/tui"
	"github.com/mauromedda/cellterm/pkg/tui/key"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
	"github.com/mauromedda/cellterm/pkg/tui/terminal"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print each key as it is decoded until the quit key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.newTerminal()
			if err != nil {
				return err
			}
			defer terminal.RestoreOnPanic(t)
			return echoKeys(cmd.Context(), t, a.cfg)
		},
	}
}

// echoKeys reads keys from t and appends one line per key until a key
// bound to quit arrives or input ends.
func echoKeys(ctx context.Context, t terminal.Terminal, cfg *config.Config) error {
	cols, rows, err := t.Size()
	if err != nil {
		return fmt.Errorf("getting terminal size: %w", err)
	}
	if err := t.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err := terminal.Restore(t); err != nil {
			log.Error(err, "restoring terminal")
		}
	}()

	keys := key.NewReader(t.Input(), cfg.Keys.EscapeTimeout)
	keymap := config.NewKeymap(cfg.Keys.Bindings)
	win := tui.NewWindow(terminal.NewDevice(t), keys, layout.Extent{Rows: rows, Cols: cols})

	line := tui.NewElement("key")
	line.SetStyle("left: 2; color: green")
	if err := win.Add(line); err != nil {
		return err
	}

	line.SetText("press keys, quit to exit")
	for {
		if _, err := win.Render(false); err != nil {
			return err
		}
		k, err := win.Input().ReadKey(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading keys: %w", err)
		}

		action := keymap.Lookup(k)
		text := fmt.Sprintf("%-12s type=%d rune=%q alt=%t", k.String(), k.Type, k.Rune, k.Alt)
		if action != config.ActionNone {
			text += "  -> " + string(action)
		}
		line.SetText(text)
		if action == config.ActionQuit {
			_, err := win.Render(false)
			return err
		}
	}
}
