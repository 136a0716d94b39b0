package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 in inches
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// ChromeSurface prints pages with a headless Chrome instance started per job
type ChromeSurface struct {
	execPath string
	timeout  time.Duration
}

// NewChromeSurface creates a surface. An empty execPath lets chromedp locate
// the browser.
func NewChromeSurface(execPath string, timeout time.Duration) *ChromeSurface {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeSurface{execPath: execPath, timeout: timeout}
}

// PrintToPDF loads fileURL and prints it as A4 with backgrounds
func (s *ChromeSurface) PrintToPDF(ctx context.Context, fileURL string) ([]byte, error) {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if s.execPath != "" {
		opts = append(opts, chromedp.ExecPath(s.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancel := context.WithTimeout(browserCtx, s.timeout)
	defer cancel()

	var buf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(fileURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome print %s: %w", fileURL, err)
	}
	return buf, nil
}
