package cartera

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// contains http utils shared by the live data providers

// noStore is a RoundTripper that defeats every cache between us and a live
// quote source: intermediary caches via headers, origin-side caches via a
// unique query parameter per request.
type noStore struct {
	base http.RoundTripper
}

func (t *noStore) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Pragma", "no-cache")
	r.Header.Set("Cache-Control", "no-cache")
	q := r.URL.Query()
	q.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	r.URL.RawQuery = q.Encode()
	return t.base.RoundTrip(r)
}

// live returns a client suitable for live market data: stale prices are
// worse than slow ones.
func live() *http.Client {
	return &http.Client{Transport: &noStore{http.DefaultTransport}}
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
