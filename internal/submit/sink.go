package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"brigada/internal/log"
)

// Sink receives one assembled payload. Implementations own transport and
// wire format; the core only hands over the finished payload.
type Sink interface {
	Submit(ctx context.Context, p Payload) error
}

// HTTPSink posts the payload as JSON to a fixed endpoint. Each submission
// carries a generated id so the receiving side can deduplicate retries.
type HTTPSink struct {
	Endpoint string
	Client   *http.Client
}

// NewHTTPSink builds a sink for the given endpoint with the given timeout.
func NewHTTPSink(endpoint string, timeout time.Duration) *HTTPSink {
	return &HTTPSink{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

// Submit posts the payload. A non-2xx response is an error carrying the
// server's "message" field when the body provides one.
func (s *HTTPSink) Submit(ctx context.Context, p Payload) error {
	body, err := p.Marshal()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	id := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Submission-ID", id)

	log.Info(log.CatSubmit, "Submitting payload", "endpoint", s.Endpoint, "id", id, "bytes", len(body))

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("sending submission: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	if msg := serverMessage(resp.Body); msg != "" {
		return fmt.Errorf("submission rejected: %s", msg)
	}
	return fmt.Errorf("submission failed with status %d", resp.StatusCode)
}

// serverMessage pulls the "message" field out of an error response body,
// returning "" when the body is not the expected JSON object.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil {
		return ""
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
