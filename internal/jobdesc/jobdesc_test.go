package jobdesc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchText_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<html><body>
			<nav>Site navigation</nav>
			<main>
				<h1>Backend Engineer</h1>
				<p>We are looking for a Go developer.</p>
			</main>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer server.Close()

	text, err := FetchText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Go developer")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestFetchText_JobBoardSelector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<div class="sidebar">Related jobs</div>
			<div class="job-description">Build distributed systems in Go.</div>
		</body></html>`))
	}))
	defer server.Close()

	text, err := FetchText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "Build distributed systems in Go.", text)
}

func TestFetchText_ScriptsRemoved(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<script>trackPageView();</script>
			<style>body { color: red; }</style>
			<p>Senior Engineer position.</p>
		</body></html>`))
	}))
	defer server.Close()

	text, err := FetchText(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Engineer position.")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "color: red")
}

func TestFetchText_InvalidURL(t *testing.T) {
	_, err := FetchText(context.Background(), "not-a-valid-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestFetchText_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := FetchText(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchText_EmptyPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>init();</script></body></html>`))
	}))
	defer server.Close()

	_, err := FetchText(context.Background(), server.URL, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no readable text")
}
