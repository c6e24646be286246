// Package browser implements the booking page capability on playwright-go.
package browser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/example/usvsched/internal/booking"
)

// Driver owns the playwright runtime and mints one isolated session per
// cycle. Sessions share nothing: each gets its own browser process and a
// fresh (incognito) context, so no cookies or storage leak between cycles.
type Driver struct {
	pw       *playwright.Playwright
	headless bool
	timeout  time.Duration
}

// Start installs the playwright runtime if needed and boots it. Driver
// output is discarded so it cannot interleave with the cycle log.
func Start(headless bool, pageTimeout time.Duration) (*Driver, error) {
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
	if err := playwright.Install(opts); err != nil {
		return nil, fmt.Errorf("installing playwright: %w", err)
	}
	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("starting playwright: %w", err)
	}
	return &Driver{pw: pw, headless: headless, timeout: pageTimeout}, nil
}

func (d *Driver) Stop() error {
	return d.pw.Stop()
}

// NewSession launches a browser with a fresh context and page.
func (d *Driver) NewSession(ctx context.Context) (booking.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := d.pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(d.headless),
	})
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}
	bctx, err := b.NewContext()
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("creating browser context: %w", err)
	}
	page, err := bctx.NewPage()
	if err != nil {
		_ = bctx.Close()
		_ = b.Close()
		return nil, fmt.Errorf("creating page: %w", err)
	}
	page.SetDefaultTimeout(float64(d.timeout.Milliseconds()))

	return &session{browser: b, context: bctx, page: page, timeout: d.timeout}, nil
}
