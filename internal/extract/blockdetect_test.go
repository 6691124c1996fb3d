package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBlock(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		body    string
		blocked bool
		kind    blockKind
	}{
		{
			name:    "normal page",
			status:  200,
			body:    "<html><body><p>conteúdo real do mercado</p></body></html>",
			blocked: false,
		},
		{
			name:    "cloudflare 403 with cf-ray",
			status:  403,
			headers: map[string]string{"cf-ray": "8a1b2c3d4e5f-GRU"},
			body:    "forbidden",
			blocked: true,
			kind:    blockCloudflare,
		},
		{
			name:    "cloudflare 503 via server header",
			status:  503,
			headers: map[string]string{"server": "cloudflare"},
			body:    "unavailable",
			blocked: true,
			kind:    blockCloudflare,
		},
		{
			name:    "challenge page on 200",
			status:  200,
			body:    "<html>Checking your browser before accessing the site</html>",
			blocked: true,
			kind:    blockCloudflare,
		},
		{
			name:    "captcha boilerplate on 200",
			status:  200,
			body:    "<html><div class=\"g-recaptcha\" data-sitekey=\"abc\"></div>Resolva o captcha para continuar</html>",
			blocked: true,
			kind:    blockCaptcha,
		},
		{
			name:    "js-only shell",
			status:  200,
			body:    "<html><noscript>Please enable JavaScript to view this page</noscript></html>",
			blocked: true,
			kind:    blockJSShell,
		},
		{
			name:    "large page mentioning javascript is fine",
			status:  200,
			body:    "<html><noscript>JavaScript</noscript>" + strings.Repeat("texto real ", 300) + "</html>",
			blocked: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{StatusCode: tt.status, Header: http.Header{}}
			for k, v := range tt.headers {
				resp.Header.Set(k, v)
			}

			blocked, kind := detectBlock(resp, []byte(tt.body))
			assert.Equal(t, tt.blocked, blocked)
			if tt.blocked {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestDetectBlock_NilResponse(t *testing.T) {
	blocked, _ := detectBlock(nil, []byte("whatever"))
	assert.False(t, blocked)
}

func TestLocalExtractor_BlockedPageIsError(t *testing.T) {
	// HTTP 200 with plenty of bytes of captcha boilerplate must still be
	// rejected so the chain can fall through to the next extractor.
	body := "<html><body>" + strings.Repeat("Resolva o captcha para continuar. ", 20) + "</body></html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	e := NewLocalExtractor()
	_, err := e.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}
