package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLFetchesPage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><main>Platform Engineer at Globex</main></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Platform Engineer")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL)
	require.Error(t, err)
	require.NotNil(t, result, "non-OK responses still return the body")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestURLInvalid(t *testing.T) {
	_, err := URL(context.Background(), "not a url")
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestExtractMainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains string
		excludes string
	}{
		{
			name:     "Prefers job description container",
			html:     `<html><body><nav>Menu</nav><div class="job-description">Own the platform layer.</div></body></html>`,
			contains: "Own the platform layer.",
			excludes: "Menu",
		},
		{
			name:     "Falls back to main",
			html:     `<html><body><main>Design services.</main><footer>Legal</footer></body></html>`,
			contains: "Design services.",
			excludes: "Legal",
		},
		{
			name:     "Falls back to body",
			html:     `<html><body><p>Plain posting text.</p><script>var x;</script></body></html>`,
			contains: "Plain posting text.",
			excludes: "var x;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractMainText(tt.html)
			require.NoError(t, err)
			assert.Contains(t, text, tt.contains)
			assert.NotContains(t, text, tt.excludes)
		})
	}
}

func TestCleanWhitespace(t *testing.T) {
	input := "  Line one   with   spaces  \n\n\n\n  Line two  "
	assert.Equal(t, "Line one with spaces\n\nLine two", cleanWhitespace(input))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
