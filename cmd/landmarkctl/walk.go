package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/chromium"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

type walkFlags struct {
	commonFlags
	backward bool
	alt      bool
	count    int
	url      string
	remote   string
	timeout  time.Duration
}

func (f walkFlags) modifiers() landmark.Modifier {
	var mods landmark.Modifier
	if f.backward {
		mods |= landmark.ModShift
	}
	if f.alt {
		mods |= landmark.ModAlt
	}
	return mods
}

func runWalk(args []string, stdout, stderr io.Writer) int {
	var opts walkFlags
	fs := newFlagSet("walk", stderr)
	opts.register(fs)
	fs.BoolVar(&opts.backward, "backward", false, "Hold Shift to walk backward")
	fs.BoolVar(&opts.alt, "alt", false, "Hold Alt to jump to the main landmark")
	fs.IntVar(&opts.count, "n", 0, "Number of key presses (default: one full cycle)")
	fs.StringVar(&opts.url, "url", "", "Walk a live page in Chromium instead of a file")
	fs.StringVar(&opts.remote, "remote", "", "DevTools URL of a running browser (default: launch one)")
	fs.DurationVar(&opts.timeout, "timeout", time.Minute, "Overall timeout for -url")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := opts.load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer landmark.Close()

	if opts.url != "" {
		if fs.NArg() != 0 {
			fmt.Fprintf(stderr, "Error: -url does not take a file argument\n")
			return 2
		}
		if err := walkURL(opts, cfg, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	path, err := singleFile(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	doc, err := openFile(path, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	walkFile(doc, opts, cfg, stdout)
	return 0
}

// walkFile presses the navigation key on doc and prints where focus goes.
func walkFile(doc *htmldoc.Document, opts walkFlags, cfg landmark.Config, w io.Writer) {
	reg := landmark.New(doc, append(cfg.Options(), landmark.WithLogger(landmark.GetLogger()))...)
	doc.Bind(reg)

	count := opts.count
	if count <= 0 {
		count = reg.Len() + 1
	}

	for i := 1; i <= count; i++ {
		ev := doc.KeyDown(cfg.NavigationKey, opts.modifiers())
		if !ev.DefaultPrevented() {
			fmt.Fprintf(w, "%2d. %s: no landmark to move to\n", i, ev)
			continue
		}
		fmt.Fprintf(w, "%2d. %s -> %s\n", i, ev, htmldoc.Describe(doc.ActiveElement()))
	}
}

// walkURL drives the registry's key handler directly against a live page.
// Synthetic events skip the browser's own key handling, so the walk does
// not depend on window focus.
func walkURL(opts walkFlags, cfg landmark.Config, w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	browser, err := chromium.Launch(ctx, opts.remote, landmark.GetLogger())
	if err != nil {
		return err
	}
	defer browser.Close()

	doc, err := browser.Open(opts.url,
		chromium.WithKeys(cfg.NavigationKey),
		chromium.WithHiddenAttributes(cfg.HiddenAttributes...),
	)
	if err != nil {
		return err
	}

	reg := landmark.New(doc, append(cfg.Options(), landmark.WithLogger(landmark.GetLogger()))...)
	if _, err := doc.Bind(reg); err != nil {
		return err
	}
	for _, d := range reg.Diagnostics() {
		fmt.Fprintf(w, "%s\n", d)
	}

	count := opts.count
	if count <= 0 {
		count = reg.Len() + 1
	}

	for i := 1; i <= count; i++ {
		active, err := doc.ActiveElement()
		if err != nil {
			return err
		}
		if active == nil {
			if active, err = doc.Body(); err != nil {
				return err
			}
		}

		ev := landmark.NewKeyEvent(cfg.NavigationKey, opts.modifiers(), active)
		cmd := reg.OnKeyDown(ev)
		if cmd.IsNone() {
			fmt.Fprintf(w, "%2d. %s: no landmark to move to\n", i, ev)
			continue
		}
		if err := reg.Dispatch(cmd); err != nil {
			return err
		}
		if _, err := doc.Sync(); err != nil {
			return err
		}

		focused, err := doc.ActiveElement()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%2d. %s -> %s\n", i, ev, doc.Describe(focused))
	}
	return nil
}
