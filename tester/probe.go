package tester

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"proxytester/tester/model"
)

// probe performs one timed round trip to the target through rec. Any
// completed response counts as success regardless of status code: the probe
// measures whether the proxy can transport a request, not what comes back.
// Exactly one attempt per proxy, bounded by the configured timeout.
func (t *Tester) probe(ctx context.Context, rec model.ProxyRecord) Outcome {
	proxyURL, err := url.Parse(rec.URI())
	if err != nil {
		return Outcome{Proxy: rec, Err: &TransportError{Err: err}}
	}

	dialer := &net.Dialer{
		Timeout: t.timeout,
	}
	transport := &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.DialContext(ctx, network, addr)
		},
		TLSClientConfig:       &tls.Config{InsecureSkipVerify: true},
		TLSHandshakeTimeout:   t.timeout,
		ResponseHeaderTimeout: t.timeout,
		DisableKeepAlives:     true,
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		// Hard wall-clock bound for the whole attempt; a probe is never left
		// running past this window.
		Timeout: t.timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return Outcome{Proxy: rec, Err: &TransportError{Err: err}}
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return Outcome{Proxy: rec, Err: &TransportError{Err: err}}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return Outcome{Proxy: rec, Duration: time.Since(start)}
}
