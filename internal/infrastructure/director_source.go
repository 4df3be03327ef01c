package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Agurato/moviedir/internal/model"
)

const defaultFetchTimeout = 10 * time.Second

type DirectorFetcher interface {
	FetchDirectors(ctx context.Context) ([]model.Director, error)
	String() string
}

// HTTPDirectorSource fetches the directors as a JSON array from a URL
type HTTPDirectorSource struct {
	url    string
	client *http.Client
}

// NewHTTPDirectorSource initializes a HTTPDirectorSource. A zero timeout uses the default one
func NewHTTPDirectorSource(url string, timeout time.Duration) *HTTPDirectorSource {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &HTTPDirectorSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s HTTPDirectorSource) String() string {
	return s.url
}

// FetchDirectors sends a single GET request and decodes the response
func (s HTTPDirectorSource) FetchDirectors(ctx context.Context) ([]model.Director, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("could not fetch directors: unexpected status %s", resp.Status)
	}
	return decodeDirectors(resp.Body)
}

// FileDirectorSource reads the directors as a JSON array from a local file
type FileDirectorSource struct {
	path string
}

func NewFileDirectorSource(path string) *FileDirectorSource {
	return &FileDirectorSource{
		path: path,
	}
}

func (s FileDirectorSource) String() string {
	return s.path
}

// FetchDirectors reads and decodes the file
func (s FileDirectorSource) FetchDirectors(ctx context.Context) ([]model.Director, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeDirectors(f)
}

// NewDirectorSource returns a HTTP source for http(s) URLs, a file source otherwise
func NewDirectorSource(location string, timeout time.Duration) (DirectorFetcher, error) {
	switch {
	case location == "":
		return nil, errors.New("no directors source given")
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPDirectorSource(location, timeout), nil
	default:
		return NewFileDirectorSource(strings.TrimPrefix(location, "file://")), nil
	}
}

func decodeDirectors(r io.Reader) ([]model.Director, error) {
	var directors []model.Director
	if err := json.NewDecoder(r).Decode(&directors); err != nil {
		return nil, fmt.Errorf("could not decode directors: %w", err)
	}
	return directors, nil
}
