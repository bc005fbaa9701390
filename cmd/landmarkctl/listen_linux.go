//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/input/evdevkeys"
	"github.com/BrandonKowalski/landmarks/pkg/landmark/platform/htmldoc"
)

func runListen(args []string, stdout, stderr io.Writer) int {
	var common commonFlags
	var device string
	var list bool
	fs := newFlagSet("listen", stderr)
	common.register(fs)
	fs.StringVar(&device, "device", "", "Input device to read, e.g. /dev/input/event3")
	fs.BoolVar(&list, "list", false, "List keyboard input devices and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if list {
		keyboards, err := evdevkeys.Keyboards()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for _, k := range keyboards {
			fmt.Fprintf(stdout, "%s\t%s\n", k.Path, k.Name)
		}
		return 0
	}

	path, err := singleFile(fs)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if device == "" {
		fmt.Fprintf(stderr, "Error: -device is required\n")
		return 2
	}
	cfg, err := common.load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer landmark.Close()

	doc, err := openFile(path, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	dev, err := evdevkeys.Open(device, landmark.GetLogger())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer dev.Close()

	reg := landmark.New(doc, append(cfg.Options(), landmark.WithLogger(landmark.GetLogger()))...)
	doc.Bind(reg)
	fmt.Fprintf(stdout, "%d landmarks; press %s on %s (Ctrl+C to stop)\n", reg.Len(), cfg.NavigationKey, device)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = dev.Listen(ctx, nil, func(key *landmark.KeyEvent) {
		res := doc.KeyDown(key.Key, key.Modifiers)
		if res.DefaultPrevented() {
			fmt.Fprintf(stdout, "%s -> %s\n", res, htmldoc.Describe(doc.ActiveElement()))
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
