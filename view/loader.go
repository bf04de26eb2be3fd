package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"gitlab.com/begraf/tourenblick/tour"
)

// ErrFetch indicates a failure retrieving the tour index or a GPX file.
// Fetches are never retried; the failed load attempt surfaces a message
// and stops.
var ErrFetch = errors.New("fetch failed")

// Loader retrieves the raw GPX bytes of a tour.
type Loader interface {
	FetchGPX(ctx context.Context, id string) ([]byte, error)
}

// StoreLoader reads tours from a built tour directory.
type StoreLoader struct {
	Store *tour.Store
}

func (l *StoreLoader) FetchGPX(_ context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(l.Store.GPXPath(id))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return data, nil
}

// HTTPLoader fetches tours from a remote tour directory over HTTP.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

func (l *HTTPLoader) FetchGPX(ctx context.Context, id string) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/%s/%s", l.BaseURL, id, tour.GPXFileName(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: GET %s: %s", ErrFetch, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	return data, nil
}
