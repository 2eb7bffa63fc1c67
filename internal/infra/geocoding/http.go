package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"routeopt/internal/errors"
)

// maxErrorBody caps how much of a failed response body is kept for logs.
const maxErrorBody = 512

// ProviderError describes a failed call to a search provider.
type ProviderError struct {
	Provider string
	Status   int
	Reason   string
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.Status, e.Reason)
	}

	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func getJSON(ctx context.Context, client *http.Client, provider, rawURL, userAgent string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.WithStack(&ProviderError{Provider: provider, Reason: err.Error()})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.WithStack(&ProviderError{Provider: provider, Status: resp.StatusCode, Reason: string(body)})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WithStack(&ProviderError{Provider: provider, Reason: "decode response: " + err.Error()})
	}

	return nil
}
