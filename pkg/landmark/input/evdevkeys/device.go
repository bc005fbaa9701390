//go:build linux

package evdevkeys

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

// Device is an opened input device.
type Device struct {
	dev    *evdev.InputDevice
	path   string
	tr     Translator
	logger *slog.Logger
}

// Open opens the input device at path, such as /dev/input/event3.
func Open(path string, logger *slog.Logger) (*Device, error) {
	if logger == nil {
		logger = landmark.GetLogger()
	}
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, landmark.NewHostError("open_device", err)
	}

	name, _ := dev.Name()
	logger.Info("Opened input device", "path", path, "name", name)
	return &Device{dev: dev, path: path, logger: logger}, nil
}

// Keyboards lists input devices whose name suggests a keyboard.
func Keyboards() ([]evdev.InputPath, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, landmark.NewHostError("list_devices", err)
	}
	var out []evdev.InputPath
	for _, p := range paths {
		if strings.Contains(strings.ToLower(p.Name), "keyboard") {
			out = append(out, p)
		}
	}
	return out, nil
}

// Listen reads events until ctx is done or the device fails, passing each
// translated key event to fn. target supplies the element that has focus
// when a key arrives. fn runs on the calling goroutine.
func (d *Device) Listen(ctx context.Context, target func() landmark.Element, fn func(*landmark.KeyEvent)) error {
	stop := context.AfterFunc(ctx, func() {
		_ = d.dev.Close()
	})
	defer stop()

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return landmark.NewHostError("read_device", err)
		}

		var el landmark.Element
		if target != nil {
			el = target()
		}
		if key := d.tr.Feed(ev, el); key != nil {
			d.logger.Debug("Key from input device", "path", d.path, "key", key.String())
			fn(key)
		}
	}
}

// Close closes the device. Closing a device that Listen already closed is
// not an error.
func (d *Device) Close() error {
	err := d.dev.Close()
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
