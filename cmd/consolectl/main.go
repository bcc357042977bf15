// Command consolectl reads and writes a running sceneview console over HTTP.
//
//	consolectl [-server URL] show
//	consolectl [-server URL] append TEXT...
//	consolectl [-server URL] frame MIN_X,MIN_Y,MIN_Z MAX_X,MAX_Y,MAX_Z
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/banshee-data/sceneview/internal/console"
	"github.com/banshee-data/sceneview/internal/framing"
	"github.com/banshee-data/sceneview/internal/httputil"
	"github.com/banshee-data/sceneview/internal/numeric"
)

var errUsage = errors.New("usage: consolectl [-server URL] show | append TEXT... | frame MIN MAX")

type client struct {
	http httputil.HTTPClient
	base string
}

func (c *client) decode(resp *http.Response, want int, v interface{}) error {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != want {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *client) postJSON(path string, payload interface{}, want int, v interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	return c.decode(resp, want, v)
}

func (c *client) show(out io.Writer) error {
	resp, err := c.http.Get(c.base + "/api/console")
	if err != nil {
		return fmt.Errorf("GET /api/console: %w", err)
	}
	var view console.View
	if err := c.decode(resp, http.StatusOK, &view); err != nil {
		return err
	}
	for _, line := range view.Lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

func (c *client) append(out io.Writer, text string) error {
	var e console.Entry
	if err := c.postJSON("/api/console", map[string]string{"text": text}, http.StatusCreated, &e); err != nil {
		return err
	}
	fmt.Fprintln(out, e.Line())
	return nil
}

func parseTriple(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected x,y,z, got %q", s)
	}
	out := make([]float64, 3)
	for i, p := range parts {
		v, err := numeric.ParseFinite(p)
		if err != nil {
			return nil, fmt.Errorf("invalid float '%s': %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func (c *client) frame(out io.Writer, minS, maxS string) error {
	minV, err := parseTriple(minS)
	if err != nil {
		return err
	}
	maxV, err := parseTriple(maxS)
	if err != nil {
		return err
	}
	var res framing.Result
	req := map[string]interface{}{"min": minV, "max": maxV, "controls": true}
	if err := c.postJSON("/api/framing", req, http.StatusOK, &res); err != nil {
		return err
	}
	fmt.Fprintf(out, "distance=%.4f far=%.4f max_orbit=%.4f\n", res.Distance, res.FarPlane, res.MaxOrbitDistance)
	return nil
}

func run(c *client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "show":
		return c.show(out)
	case "append":
		text := strings.Join(args[1:], " ")
		if strings.TrimSpace(text) == "" {
			return errUsage
		}
		return c.append(out, text)
	case "frame":
		if len(args) != 3 {
			return errUsage
		}
		return c.frame(out, args[1], args[2])
	default:
		return errUsage
	}
}

func main() {
	server := flag.String("server", "http://localhost:8090", "sceneview base URL")
	timeout := flag.Duration("timeout", 5*time.Second, "Request timeout")
	flag.Parse()

	c := &client{
		http: httputil.NewStandardClient(&http.Client{Timeout: *timeout}),
		base: strings.TrimRight(*server, "/"),
	}
	if err := run(c, flag.Args(), os.Stdout); err != nil {
		log.Fatalf("consolectl: %v", err)
	}
}
