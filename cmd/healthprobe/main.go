// Command healthprobe performs a single liveness check against a running
// server and exits 0 on success, 1 on failure. It is intended as a
// container HEALTHCHECK or orchestrator exec probe where curl is not
// available in the image.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

func main() {
	address := flag.String("a", "http://localhost:8080", "base URL of the server to probe")
	path := flag.String("p", "/healthz", "health endpoint path")
	timeout := flag.Duration("t", 3*time.Second, "probe timeout")
	flag.Parse()

	client := resty.New().
		SetBaseURL(*address).
		SetTimeout(*timeout)

	resp, err := client.R().Get(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "health probe failed: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode() != http.StatusOK {
		fmt.Fprintf(os.Stderr, "health probe failed: unexpected status %d\n", resp.StatusCode())
		os.Exit(1)
	}

	fmt.Println("ok")
}
