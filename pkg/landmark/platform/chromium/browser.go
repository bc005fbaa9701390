package chromium

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/BrandonKowalski/landmarks/pkg/landmark"
)

// Browser is a connected Chromium instance.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	logger   *slog.Logger
}

// Launch connects to the browser at controlURL, or starts a local headless
// Chromium when controlURL is empty.
func Launch(ctx context.Context, controlURL string, logger *slog.Logger) (*Browser, error) {
	if logger == nil {
		logger = landmark.GetLogger()
	}
	b := &Browser{logger: logger}

	wsURL := controlURL
	if wsURL == "" {
		l := launcher.New().Context(ctx).Headless(true)
		u, err := l.Launch()
		if err != nil {
			return nil, landmark.NewHostError("launch", err)
		}
		wsURL = u
		b.launcher = l
		logger.Info("Launched local chromium", "url", wsURL)
	} else {
		u, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, landmark.NewHostError("resolve", err)
		}
		wsURL = u
		logger.Info("Connecting to remote chromium", "url", wsURL)
	}

	browser := rod.New().Context(ctx).ControlURL(wsURL)
	if err := browser.Connect(); err != nil {
		b.cleanup()
		return nil, landmark.NewHostError("connect", err)
	}
	b.browser = browser
	return b, nil
}

// Open loads url in a new page and installs the adapter.
func (b *Browser) Open(url string, opts ...Option) (*Document, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, landmark.NewHostError("open", fmt.Errorf("%s: %w", url, err))
	}
	if err := page.WaitLoad(); err != nil {
		return nil, landmark.NewHostError("load", fmt.Errorf("%s: %w", url, err))
	}

	opts = append([]Option{WithLogger(b.logger)}, opts...)
	return New(page, opts...)
}

// OpenHTML loads an HTML string into a new blank page.
func (b *Browser) OpenHTML(content string, opts ...Option) (*Document, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, landmark.NewHostError("open", err)
	}
	if err := page.SetDocumentContent(content); err != nil {
		return nil, landmark.NewHostError("load", err)
	}

	opts = append([]Option{WithLogger(b.logger)}, opts...)
	return New(page, opts...)
}

// Close disconnects from the browser and stops it if it was launched here.
func (b *Browser) Close() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
		b.browser = nil
	}
	b.cleanup()
	return err
}

func (b *Browser) cleanup() {
	if b.launcher != nil {
		b.launcher.Cleanup()
		b.launcher = nil
	}
}
