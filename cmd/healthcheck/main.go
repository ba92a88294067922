// Command healthcheck probes the dashboard liveness endpoint. It exists so
// container images can run a health check without a shell or curl.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"
)

const defaultTimeout = 5 * time.Second

func main() {
	var (
		url     = flag.String("url", "http://127.0.0.1:8501/_stcore/health", "Health endpoint to probe")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, *url, nil)
	if err != nil {
		os.Stderr.WriteString("healthcheck: " + err.Error() + "\n")
		os.Exit(1)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		os.Stderr.WriteString("healthcheck: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		os.Stderr.WriteString("healthcheck: unexpected status " + resp.Status + "\n")
		os.Exit(1)
	}
}
