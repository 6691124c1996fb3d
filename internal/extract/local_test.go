package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	html := `<html><head><title>Página</title>
	<script>var x = "ruído";</script>
	<style>.a { color: red; }</style></head>
	<body><nav>menu menu</nav>
	<h1>Mercado fitness</h1>
	<p>Crescimento de 12% ao ano &amp; demanda forte.</p>
	<footer>rodapé</footer></body></html>`

	text := stripHTML(html)

	assert.Contains(t, text, "Mercado fitness")
	assert.Contains(t, text, "Crescimento de 12% ao ano & demanda forte.")
	assert.NotContains(t, text, "ruído")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "menu menu")
	assert.NotContains(t, text, "rodapé")
	assert.NotContains(t, text, "<")
}

func TestStripHTML_Entities(t *testing.T) {
	text := stripHTML(`<p>a &lt; b &gt; c &quot;d&quot; &#39;e&#39;&nbsp;f</p>`)
	assert.Equal(t, `a < b > c "d" 'e' f`, text)
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	text := stripHTML("<p>um     dois\t\ttrês</p>")
	assert.Equal(t, "um dois três", text)
}

func TestLocalExtractor_Success(t *testing.T) {
	body := "<html><body><p>" + strings.Repeat("conteúdo relevante ", 20) + "</p></body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	e := NewLocalExtractor()
	content, err := e.Extract(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, content, "conteúdo relevante")
}

func TestLocalExtractor_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, strings.Repeat("acesso negado ", 20), http.StatusForbidden)
	}))
	defer srv.Close()

	e := NewLocalExtractor()
	_, err := e.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestLocalExtractor_TinyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	e := NewLocalExtractor()
	_, err := e.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}
