package di

import (
	"fmt"
	"net/http"
	"runtime"
	"time"
)

const (
	defaultUserAgent   = "gitweb-cli (+https://github.com/goliatone/gitweb)"
	defaultAccept      = "application/json"
	defaultHTTPTimeout = 30 * time.Second
)

// provideHTTPClient creates a default HTTP client for API calls, with a
// bounded timeout and identifying headers.
func provideHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   defaultHTTPTimeout,
		Transport: newHeaderRoundTripper(nil, defaultHTTPHeaders()),
	}
}

func defaultHTTPHeaders() http.Header {
	headers := make(http.Header)
	headers.Set("User-Agent", buildUserAgent())
	headers.Set("Accept", defaultAccept)
	return headers
}

func buildUserAgent() string {
	return fmt.Sprintf("%s go/%s %s/%s", defaultUserAgent, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

type headerRoundTripper struct {
	base    http.RoundTripper
	headers http.Header
}

func newHeaderRoundTripper(base http.RoundTripper, headers http.Header) http.RoundTripper {
	if headers == nil {
		headers = make(http.Header)
	}
	var underlying http.RoundTripper = http.DefaultTransport
	if base != nil {
		underlying = base
	} else if transport, ok := http.DefaultTransport.(*http.Transport); ok {
		underlying = transport.Clone()
	}
	return &headerRoundTripper{base: underlying, headers: headers}
}

func (h *headerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if h == nil {
		return http.DefaultTransport.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	for key, values := range h.headers {
		if clone.Header.Get(key) != "" {
			continue
		}
		for _, value := range values {
			clone.Header.Add(key, value)
		}
	}
	return h.base.RoundTrip(clone)
}
