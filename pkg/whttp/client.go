package whttp

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type LoggingRoundTripper struct {
	Proxied http.RoundTripper
}

func (lrt LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	slog.Info("outbound request", "method", req.Method, "host", req.URL.Host, "path", req.URL.Path)

	res, err := lrt.Proxied.RoundTrip(req)
	if err != nil {
		slog.Error("outbound request failed", "error", err.Error())
		return res, err
	}

	b := bytes.NewBuffer(make([]byte, 0))
	reader := io.TeeReader(res.Body, b)

	body, _ := io.ReadAll(reader)
	slog.Info("outbound response", "status", res.Status, "size", len(body))

	defer res.Body.Close()

	res.Body = io.NopCloser(b)

	return res, nil
}

func NewLoggingClient() *http.Client {
	return &http.Client{
		Transport: LoggingRoundTripper{Proxied: http.DefaultTransport},
		Timeout:   5 * time.Second,
	}
}
