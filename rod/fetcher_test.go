//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/locprof"
	"github.com/fwojciec/locprof/goquery"
	"github.com/fwojciec/locprof/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lazyProfile mounts its Skills section from script on the first scroll.
const lazyProfile = `<!DOCTYPE html>
<html>
<body style="height: 4000px">
<main>
<section><h1>Jane Doe</h1><div>Senior Engineer at Acme building things</div></section>
</main>
<script>
window.addEventListener('scroll', function once() {
  window.removeEventListener('scroll', once);
  const s = document.createElement('section');
  s.innerHTML = '<h2>Skills</h2><div>Go</div><button>Endorse</button>';
  document.querySelector('main').appendChild(s);
});
</script>
</body>
</html>`

func newProfileServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/in/jane-doe/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(lazyProfile))
	})
	mux.HandleFunc("/in/slow/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	srv := newProfileServer(t)

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(time.Second), rod.WithSettleTime(200*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = fetcher.Close() })

	t.Run("renders sections mounted on scroll", func(t *testing.T) {
		t.Parallel()

		html, err := fetcher.Fetch(context.Background(), srv.URL+"/in/jane-doe/")
		require.NoError(t, err)

		c, err := goquery.NewExtractor().Extract(html, srv.URL+"/in/jane-doe/")
		require.NoError(t, err)
		require.NotNil(t, c.Profile.Header)
		require.NotNil(t, c.Profile.Header.Name)
		assert.Equal(t, "Jane Doe", *c.Profile.Header.Name)
		assert.Equal(t, []locprof.Skill{{Name: "Go"}}, c.Profile.Skills)
	})

	t.Run("gives up on slow pages", func(t *testing.T) {
		t.Parallel()

		_, err := fetcher.Fetch(context.Background(), srv.URL+"/in/slow/")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, srv.URL+"/in/jane-doe/")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	require.NoError(t, fetcher.Close())
	require.NoError(t, fetcher.Close())

	_, err = fetcher.Fetch(context.Background(), "https://www.linkedin.com/in/jane-doe/")
	assert.Equal(t, locprof.EINVALID, locprof.ErrorCode(err))
}

func TestNewFetcher_UnreachableControlURL(t *testing.T) {
	t.Parallel()

	_, err := rod.NewFetcher(rod.WithBrowser(rod.WithControlURL("ws://127.0.0.1:1/devtools/browser/none")))
	assert.Error(t, err)
}
