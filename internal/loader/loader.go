package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bordhockey/statsboard/internal/matches"
	"github.com/charmbracelet/log"
)

var (
	// ErrFetch marks transport-level failures: connection errors and
	// non-success HTTP statuses.
	ErrFetch = errors.New("failed to fetch match data")
	// ErrSchema marks payloads that are neither a bare array of records nor
	// an object with a matches array.
	ErrSchema = errors.New("unexpected match data shape")
)

// HTTPLoader fetches the match dataset over HTTP. It implements the Loader
// interface.
type HTTPLoader struct {
	httpClient *http.Client
	URL        string
}

// NewClient creates a new dataset loader for the given URL.
func NewClient(url string) Loader {
	return &HTTPLoader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		URL:        url,
	}
}

// Ensure HTTPLoader implements the Loader interface.
var _ Loader = (*HTTPLoader)(nil)

// Load fetches and decodes the dataset. Caching is disabled so every load
// retrieves the freshest copy.
func (c *HTTPLoader) Load(ctx context.Context) ([]matches.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	log.Debug("Requesting match dataset", "url", c.URL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error("Received non-OK HTTP status for match dataset", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrFetch, err)
	}

	records, err := decode(body)
	if err != nil {
		return nil, err
	}

	log.Info("Loaded match dataset", "count", len(records))
	return records, nil
}

// decode accepts the two valid payload shapes: a bare array of records, or an
// object exposing a matches array. Anything else, including a null body or a
// null matches field, is a schema error; an invalid payload must never pass
// for an empty dataset.
func decode(body []byte) ([]matches.Record, error) {
	payload := bytes.TrimSpace(body)
	if len(payload) > 0 && payload[0] == '[' {
		var records []matches.Record
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchema, err)
		}
		return records, nil
	}

	var wrapper struct {
		Matches json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(payload, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	inner := bytes.TrimSpace(wrapper.Matches)
	if len(inner) == 0 || inner[0] != '[' {
		return nil, fmt.Errorf("%w: payload is neither an array nor an object with a matches array", ErrSchema)
	}
	var records []matches.Record
	if err := json.Unmarshal(inner, &records); err != nil {
		return nil, fmt.Errorf("%w: matches field is not an array of records: %w", ErrSchema, err)
	}
	return records, nil
}
