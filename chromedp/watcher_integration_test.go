//go:build integration

package chromedp_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/fwojciec/clickscribe"
	cdp "github.com/fwojciec/clickscribe/chromedp"
	"github.com/fwojciec/clickscribe/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calendarPage = `<!DOCTYPE html>
<html>
<body>
<div id="event">Weekly<br>Stand-up</div>
<div id="chip"><span id="icon"></span> Design Review </div>
<div><span id="blank"></span></div>
<div id="spacer-parent">Planning<span id="spacer">&#xFEFF;</span></div>
<div><span id="lonely-spacer">&#xFEFF;</span></div>
</body>
</html>`

func TestWatcher_Attach(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(calendarPage))
	}))
	defer srv.Close()

	browser, err := cdp.NewBrowser(cdp.WithHeadless(true))
	require.NoError(t, err)
	defer browser.Close()

	events := make(chan *clickscribe.ClickEvent, 10)
	watcher := cdp.NewWatcher(browser, &mock.ClickHandler{
		HandleClickFn: func(_ context.Context, ev *clickscribe.ClickEvent) clickscribe.Result {
			events <- ev
			return clickscribe.Result{}
		},
	})

	tabCtx, cancel := chromedp.NewContext(browser.Context())
	defer cancel()
	require.NoError(t, chromedp.Run(tabCtx, chromedp.Navigate(srv.URL)))
	require.NoError(t, watcher.Attach(context.Background(), tabCtx))

	click := func(t *testing.T, id string, ctrl bool) bool {
		t.Helper()
		var notCanceled bool
		js := fmt.Sprintf(`document.getElementById(%q).dispatchEvent(
			new MouseEvent('click', {bubbles: true, cancelable: true, ctrlKey: %t}))`, id, ctrl)
		err := chromedp.Run(tabCtx, chromedp.Evaluate(js, &notCanceled))
		require.NoError(t, err)
		return notCanceled
	}

	receive := func(t *testing.T) *clickscribe.ClickEvent {
		t.Helper()
		select {
		case ev := <-events:
			return ev
		case <-time.After(5 * time.Second):
			t.Fatal("no click reported")
			return nil
		}
	}

	t.Run("target text", func(t *testing.T) {
		assert.False(t, click(t, "event", true))
		label, ok := clickscribe.ExtractLabel(receive(t).Target)
		assert.True(t, ok)
		assert.Equal(t, "Weekly Stand-up", label)
	})

	t.Run("parent fallback", func(t *testing.T) {
		assert.False(t, click(t, "icon", true))
		label, ok := clickscribe.ExtractLabel(receive(t).Target)
		assert.True(t, ok)
		assert.Equal(t, "Design Review", label)
	})

	t.Run("no text", func(t *testing.T) {
		assert.True(t, click(t, "blank", true))
		_, ok := clickscribe.ExtractLabel(receive(t).Target)
		assert.False(t, ok)
	})

	t.Run("unmodified", func(t *testing.T) {
		assert.True(t, click(t, "event", false))
		select {
		case ev := <-events:
			t.Fatalf("unexpected report: %+v", ev)
		case <-time.After(200 * time.Millisecond):
		}
	})
}

func TestOpener_Open(t *testing.T) {
	t.Parallel()

	requests := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case requests <- r.URL.Query().Get(clickscribe.TitleParam):
		default:
		}
	}))
	defer srv.Close()

	browser, err := cdp.NewBrowser(cdp.WithHeadless(true))
	require.NoError(t, err)
	defer browser.Close()

	target, err := clickscribe.TargetURL(srv.URL, "Design Review")
	require.NoError(t, err)

	require.NoError(t, cdp.NewOpener(browser).Open(context.Background(), target))

	select {
	case title := <-requests:
		assert.Equal(t, "Design Review", title)
	case <-time.After(10 * time.Second):
		t.Fatal("endpoint was not requested")
	}
}

func TestWatcher_Watch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	browser, err := cdp.NewBrowser(cdp.WithHeadless(true))
	require.NoError(t, err)

	watcher := cdp.NewWatcher(browser, &mock.ClickHandler{})
	require.NoError(t, watcher.Close())
	require.NoError(t, watcher.Close())

	err = watcher.Watch(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, clickscribe.EINVALID, clickscribe.ErrorCode(err))

	err = cdp.NewOpener(browser).Open(context.Background(), "http://127.0.0.1:8000?auto_title=x")
	assert.Equal(t, clickscribe.EINVALID, clickscribe.ErrorCode(err))
}

func TestWatcher_Watch_ReturnsWhenContextCanceled(t *testing.T) {
	t.Parallel()

	browser, err := cdp.NewBrowser(cdp.WithHeadless(true))
	require.NoError(t, err)
	defer browser.Close()

	watcher := cdp.NewWatcher(browser, &mock.ClickHandler{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = watcher.Watch(ctx, "about:blank")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWatcher_Attach_OpensEndpointExactlyWhenSuppressed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(calendarPage))
	}))
	defer srv.Close()

	titles := make(chan string, 10)
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has(clickscribe.TitleParam) {
			titles <- r.URL.Query().Get(clickscribe.TitleParam)
		}
	}))
	defer endpoint.Close()

	browser, err := cdp.NewBrowser(cdp.WithHeadless(true))
	require.NoError(t, err)
	defer browser.Close()

	interceptor, err := clickscribe.NewInterceptor(
		cdp.NewOpener(browser),
		clickscribe.WithEndpoint(endpoint.URL),
	)
	require.NoError(t, err)
	watcher := cdp.NewWatcher(browser, interceptor)

	tabCtx, cancel := chromedp.NewContext(browser.Context())
	defer cancel()
	require.NoError(t, chromedp.Run(tabCtx, chromedp.Navigate(srv.URL)))
	require.NoError(t, watcher.Attach(context.Background(), tabCtx))

	tests := []struct {
		id        string
		wantTitle string
	}{
		{id: "event", wantTitle: "Weekly Stand-up"},
		{id: "icon", wantTitle: "Design Review"},
		{id: "blank"},
		{id: "spacer", wantTitle: "Planning"},
		{id: "lonely-spacer"},
	}

	// Sequential: every click shares the tab and the endpoint.
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			var notCanceled bool
			js := fmt.Sprintf(`document.getElementById(%q).dispatchEvent(
				new MouseEvent('click', {bubbles: true, cancelable: true, ctrlKey: true}))`, tt.id)
			require.NoError(t, chromedp.Run(tabCtx, chromedp.Evaluate(js, &notCanceled)))

			if tt.wantTitle == "" {
				assert.True(t, notCanceled)
				select {
				case title := <-titles:
					t.Fatalf("unexpected capture %q", title)
				case <-time.After(500 * time.Millisecond):
				}
				return
			}

			assert.False(t, notCanceled)
			select {
			case title := <-titles:
				assert.Equal(t, tt.wantTitle, title)
			case <-time.After(10 * time.Second):
				t.Fatal("endpoint was not requested")
			}
		})
	}
}
