// ABOUTME: Interactive demo screen: fixed title, focusable panels, info and status lines
// ABOUTME: Key, resize and file-watch events feed one render loop through an errgroup

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/cellterm/internal/config"
	"github.com/mauromedda/cellterm/internal/log"
	"github.com/mauromedda/cellterm/pkg/tui"
	"github.com/mauromedda/cellterm/pkg/tui/key"
	"github.com/mauromedda/cellterm/pkg/tui/layout"
	"github.com/mauromedda/cellterm/pkg/tui/terminal"
	"github.com/mauromedda/cellterm/pkg/tui/theme"
	"github.com/mauromedda/cellterm/pkg/tui/width"
)

// errQuit ends the render loop without reporting an error.
var errQuit = errors.New("quit")

const infoWidth = 60

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the interactive layout demo (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd.Context())
		},
	}
}

func (a *app) runDemo(ctx context.Context) error {
	t, err := a.newTerminal()
	if err != nil {
		return err
	}
	defer terminal.RestoreOnPanic(t)

	d, err := newDemo(t, a)
	if err != nil {
		return err
	}
	return d.run(ctx)
}

// demo owns the element tree. Only the render loop touches it.
type demo struct {
	term   terminal.Terminal
	dev    *terminal.Device
	win    *tui.Window
	keys   *key.Reader
	keymap *config.Keymap
	cfg    *config.Config

	// watcher follows the config file and the active theme file.
	watcher *config.Watcher

	configPath    string
	themePath     string
	themeOverride string

	title  *tui.Element
	panels []*tui.Element
	info   *tui.Element
	status *tui.Element

	focus   int
	lastKey string

	resized atomic.Pointer[layout.Extent]
}

func newDemo(t terminal.Terminal, a *app) (*demo, error) {
	cols, rows, err := t.Size()
	if err != nil {
		return nil, fmt.Errorf("getting terminal size: %w", err)
	}
	dev := terminal.NewDevice(t)
	d := &demo{
		term:          t,
		dev:           dev,
		keys:          key.NewReader(t.Input(), a.cfg.Keys.EscapeTimeout),
		keymap:        config.NewKeymap(a.cfg.Keys.Bindings),
		cfg:           a.cfg,
		configPath:    a.configPath,
		themePath:     a.themePath,
		themeOverride: a.themeName,
	}
	d.win = tui.NewWindow(dev, d.keys, layout.Extent{Rows: rows, Cols: cols})
	d.watcher = config.NewWatcher(config.DefaultWatchInterval, d.watchPaths()...)
	if err := d.build(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *demo) build() error {
	d.title = tui.NewElement("title").SetText(d.cfg.Demo.Title)
	d.title.SetStyle("position: fixed; top: 0; middle: 50%; text-align: center; color: bright-white")

	panels := tui.NewGroup("panels")
	specs := []struct{ id, style string }{
		{"left", "left: 2; text-align: left"},
		{"center", "middle: 50%; text-align: center"},
		{"right", "right: 2; text-align: right"},
	}
	for _, s := range specs {
		p := tui.NewElement(s.id).SetText("[ " + s.id + " ]\n" + strings.Repeat("~", len(s.id)+4))
		p.SetStyle("position: fixed; top: 25%; color: cyan; " + s.style)
		if err := panels.Add(p); err != nil {
			return err
		}
		d.panels = append(d.panels, p)
	}

	d.info = tui.NewElement("info")
	d.info.SetStyle("position: fixed; bottom: 1; left: 1; color: yellow")

	d.status = tui.NewElement("status").SetText(d.cfg.Demo.Status)
	d.status.SetStyle("position: fixed; bottom: 0; right: 1; text-align: right; color: gray")

	for _, n := range []tui.Node{d.title, panels, d.info, d.status} {
		if err := d.win.Add(n); err != nil {
			return err
		}
	}
	return d.setFocus(0)
}

// setFocus moves the highlight and the cursor to panel i.
func (d *demo) setFocus(i int) error {
	n := len(d.panels)
	d.focus = ((i % n) + n) % n
	for j, p := range d.panels {
		bg := "default"
		if j == d.focus {
			bg = "blue"
		}
		p.MergeStyle("background: " + bg)
	}
	d.updateInfo()
	return d.panels[d.focus].Focus()
}

func (d *demo) updateInfo() {
	ext := d.win.Size()
	text := fmt.Sprintf("focus: %s  size: %dx%d  theme: %s  key: %s",
		d.panels[d.focus].ID(), ext.Cols, ext.Rows, theme.Current().Name, d.lastKey)
	// Pad so a shorter line overwrites the previous one.
	if pad := infoWidth - width.VisibleWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	d.info.SetText(text)
}

// handleKey applies the action bound to k.
func (d *demo) handleKey(k key.Key) error {
	d.lastKey = k.String()
	switch d.keymap.Lookup(k) {
	case config.ActionQuit:
		return errQuit
	case config.ActionNext:
		return d.setFocus(d.focus + 1)
	case config.ActionPrev:
		return d.setFocus(d.focus - 1)
	case config.ActionRedraw:
		d.updateInfo()
		return d.win.Clear()
	default:
		d.updateInfo()
		return nil
	}
}

func (d *demo) handleResize(ext layout.Extent) error {
	d.win.Resize(ext.Rows, ext.Cols)
	d.updateInfo()
	return d.win.Clear()
}

// reload re-reads the config file and re-resolves the theme.
func (d *demo) reload() error {
	cfg, err := config.Load(d.configPath)
	if err != nil {
		log.Warn("config reload failed: %v", err)
		return nil
	}
	if d.themeOverride != "" {
		cfg.Theme = d.themeOverride
	}
	t, path, err := resolveTheme(cfg.Theme)
	if err != nil {
		log.Warn("theme reload failed: %v", err)
		return nil
	}
	theme.Set(t)
	d.themePath = path
	d.watcher.Watch(d.watchPaths()...)
	d.cfg = cfg
	d.keymap = config.NewKeymap(cfg.Keys.Bindings)
	d.title.SetText(cfg.Demo.Title)
	d.status.SetText(cfg.Demo.Status)
	d.updateInfo()
	log.Info("reloaded config %s, theme %s", d.configPath, t.Name)
	return d.win.Clear()
}

func (d *demo) watchPaths() []string {
	paths := []string{d.configPath}
	if d.themePath != "" {
		paths = append(paths, d.themePath)
	}
	return paths
}

// run drives the screen until a quit key, end of input or ctx is done.
func (d *demo) run(ctx context.Context) error {
	if err := d.term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		_ = d.dev.ClearScreen()
		_ = d.dev.SetPos(1, 1)
		if err := terminal.Restore(d.term); err != nil {
			log.Error(err, "restoring terminal")
		}
	}()

	keys := make(chan key.Key)
	resized := make(chan struct{}, 1)
	changed := make(chan struct{}, 1)

	d.term.OnResize(func(cols, rows int) {
		d.resized.Store(&layout.Extent{Rows: rows, Cols: cols})
		notify(resized)
	})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer terminal.RecoverGoroutine(d.term)
		defer close(keys)
		for {
			k, err := d.keys.ReadKey(ctx)
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading keys: %w", err)
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer terminal.RecoverGoroutine(d.term)
		if err := d.watcher.Run(ctx, func() { notify(changed) }); ctx.Err() == nil {
			return err
		}
		return nil
	})

	g.Go(func() error {
		defer terminal.RecoverGoroutine(d.term)
		return d.loop(ctx, keys, resized, changed)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

func (d *demo) loop(ctx context.Context, keys <-chan key.Key, resized, changed <-chan struct{}) error {
	if err := d.win.Clear(); err != nil {
		return err
	}
	for {
		if _, err := d.win.Render(false); err != nil {
			return err
		}

		var err error
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok {
				return errQuit
			}
			err = d.handleKey(k)
		case <-resized:
			if ext := d.resized.Load(); ext != nil {
				err = d.handleResize(*ext)
			}
		case <-changed:
			err = d.reload()
		}
		if err != nil {
			return err
		}
	}
}

// notify performs a non-blocking send so bursts collapse into one event.
func notify(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
