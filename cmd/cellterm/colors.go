// ABOUTME: colors subcommand: prints foreground and background samples of the active theme
// ABOUTME: Unknown names get a fuzzy "did you mean" suggestion

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mauromedda/cellterm/pkg/tui"
	"github.com/mauromedda/cellterm/pkg/tui/terminal"
	"github.com/mauromedda/cellterm/pkg/tui/theme"
)

var errUnknownColor = errors.New("unknown color")

func newColorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors [name...]",
		Short: "Show color samples from the active theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printColors(cmd.OutOrStdout(), theme.Current(), args)
		},
	}
}

// printColors writes one sample line per color name. With no names
// every name in t is shown.
func printColors(w io.Writer, t *theme.Theme, names []string) error {
	if len(names) == 0 {
		names = t.Names()
	}
	dev := terminal.NewDevice(w).WithTheme(t)

	var unknown []string
	for _, name := range names {
		name = strings.ToLower(name)
		if _, ok := t.FgColor(name); !ok {
			msg := fmt.Sprintf("%q", name)
			if s, ok := t.Suggest(name); ok {
				msg += fmt.Sprintf(" (did you mean %q?)", s)
			}
			unknown = append(unknown, msg)
			continue
		}
		fg := tui.Compose(tui.Line{Text: fmt.Sprintf(" %-16s", name), Color: name}, dev)
		bg := tui.Compose(tui.Line{Text: "        ", Background: name}, dev)
		if _, err := fmt.Fprintf(w, "%s %s\n", fg, bg); err != nil {
			return fmt.Errorf("writing sample: %w", err)
		}
	}

	if len(unknown) > 0 {
		return fmt.Errorf("%w in theme %s: %s", errUnknownColor, t.Name, strings.Join(unknown, ", "))
	}
	return nil
}
