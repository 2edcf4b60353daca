package scoreboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	defaultTimeout = 30 * time.Second
)

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type httpFetcher struct {
	client  *http.Client
	timeout time.Duration
}

func newHTTPFetcher(timeout time.Duration) *httpFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &httpFetcher{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// renderedFetcher drives a headless browser so JS-populated scoreboards
// produce complete markup before parsing.
type renderedFetcher struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
}

func newRenderedFetcher(timeout time.Duration) *renderedFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &renderedFetcher{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  timeout,
	}
}

// Close releases the browser allocator.
func (f *renderedFetcher) Close() {
	if f.cancel != nil {
		f.cancel()
	}
}

func (f *renderedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(f.allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, f.timeout)
	defer cancelTimeout()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // allow JS to render
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	return htmlContent, nil
}
