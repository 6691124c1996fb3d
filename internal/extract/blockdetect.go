package extract

import (
	"net/http"
	"strings"
)

// blockKind describes the anti-bot protection detected on a page.
type blockKind string

const (
	blockNone       blockKind = ""
	blockCloudflare blockKind = "cloudflare"
	blockCaptcha    blockKind = "captcha"
	blockJSShell    blockKind = "js_shell"
)

// detectBlock checks a fetched page for signs of anti-bot protection. A
// blocked page often comes back as HTTP 200 with captcha or challenge
// boilerplate; accepting it would pollute the research corpus, so the local
// extractor rejects it and lets the chain fall through to Jina Reader.
func detectBlock(resp *http.Response, body []byte) (bool, blockKind) {
	if resp == nil {
		return false, blockNone
	}

	// Cloudflare challenge: 403/503 carrying cf-* headers.
	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusServiceUnavailable {
		if resp.Header.Get("cf-ray") != "" || resp.Header.Get("cf-cache-status") != "" {
			return true, blockCloudflare
		}
		if resp.Header.Get("server") == "cloudflare" {
			return true, blockCloudflare
		}
	}

	lower := strings.ToLower(string(body))

	if strings.Contains(lower, "checking your browser") ||
		strings.Contains(lower, "cf-browser-verification") ||
		(strings.Contains(lower, "cloudflare") && strings.Contains(lower, "challenge")) {
		return true, blockCloudflare
	}

	if strings.Contains(lower, "captcha") ||
		strings.Contains(lower, "recaptcha") ||
		strings.Contains(lower, "hcaptcha") {
		return true, blockCaptcha
	}

	// A tiny body that demands JavaScript is a render shell, not content.
	if len(body) < 2000 {
		if strings.Contains(lower, "<noscript") && strings.Contains(lower, "javascript") {
			return true, blockJSShell
		}
		if strings.Contains(lower, `meta http-equiv="refresh"`) {
			return true, blockJSShell
		}
	}

	return false, blockNone
}
