// Package client talks to the JSON API of the library server.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const defaultTimeout = 10 * time.Second

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrRequestFailed is returned when the server could not be reached or answered garbage.
var ErrRequestFailed = errors.New("request to library server failed")

// APIError is an error response of the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("library server answered %d: %s", e.StatusCode, e.Message)
}

// Book is a row of the catalog as the server lists it.
type Book struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Title       string `json:"title"`
	ISBN        string `json:"isbn"`
	ReleaseDate string `json:"releaseDate"`
	State       string `json:"state"`
}

// Client is a small API client with basic auth.
type Client struct {
	baseURL    string
	user       string
	password   string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a Client for the server at baseURL, e.g. "http://localhost:8080".
func New(baseURL, user, password string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		user:       user,
		password:   password,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListBooks searches the catalog. An empty text lists all active books.
func (c *Client) ListBooks(ctx context.Context, text string) ([]Book, error) {
	path := "/api/books"
	if text != "" {
		path += "?q=" + url.QueryEscape(text)
	}

	var response struct {
		Books []Book `json:"books"`
	}

	if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	return response.Books, nil
}

// AddBook adds a book with just a title and returns its ID.
func (c *Client) AddBook(ctx context.Context, title string) (string, error) {
	var response struct {
		ID string `json:"id"`
	}

	if err := c.do(ctx, http.MethodPost, "/api/books", map[string]string{"title": title}, &response); err != nil {
		return "", err
	}

	return response.ID, nil
}

// SetTitle changes the title of a book.
func (c *Client) SetTitle(ctx context.Context, bookID, title string) error {
	return c.do(ctx, http.MethodPut, "/api/books/"+url.PathEscape(bookID), map[string]string{"title": title}, nil)
}

// DeleteBook removes a book from the catalog.
func (c *Client) DeleteBook(ctx context.Context, bookID string) error {
	return c.do(ctx, http.MethodDelete, "/api/books/"+url.PathEscape(bookID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, target any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	request.SetBasicAuth(c.user, c.password)
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer func() { _ = response.Body.Close() }()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	if response.StatusCode >= http.StatusBadRequest {
		return apiError(response.StatusCode, raw)
	}

	if target == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Join(ErrRequestFailed, err)
	}

	return nil
}

func apiError(status int, raw []byte) error {
	var response struct {
		Error string `json:"error"`
	}

	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &response); err == nil && response.Error != "" {
		message = response.Error
	}

	return &APIError{StatusCode: status, Message: message}
}
