// Package apiclient habla con la API JSON de pacientes.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultTimeout = 10 * time.Second

var ErrNotFound = errors.New("patient not found")

type Patient struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Propietario string `json:"propietario"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Sintomas    string `json:"sintomas"`
}

// Fields son los datos editables (sin id).
type Fields struct {
	Nombre      string `json:"nombre"`
	Propietario string `json:"propietario"`
	Email       string `json:"email"`
	Fecha       string `json:"fecha"`
	Sintomas    string `json:"sintomas"`
}

// ValidationError es el 400 de la API con los campos vacíos.
type ValidationError struct {
	Message string   `json:"error"`
	Missing []string `json:"campos"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Missing, ", "))
}

// HTTPError es cualquier otra respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

func (c *Client) List(ctx context.Context) ([]Patient, error) {
	var out []Patient
	if err := c.do(ctx, http.MethodGet, "/api/pacientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id string) (Patient, error) {
	var out Patient
	err := c.do(ctx, http.MethodGet, patientPath(id), nil, &out)
	return out, err
}

func (c *Client) Create(ctx context.Context, f Fields) (Patient, error) {
	var out Patient
	err := c.do(ctx, http.MethodPost, "/api/pacientes", f, &out)
	return out, err
}

func (c *Client) Update(ctx context.Context, id string, f Fields) (Patient, error) {
	var out Patient
	err := c.do(ctx, http.MethodPut, patientPath(id), f, &out)
	return out, err
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, patientPath(id), nil, nil)
}

func patientPath(id string) string {
	return "/api/pacientes/" + url.PathEscape(strings.TrimSpace(id))
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("apiclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("apiclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("apiclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1MB max

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		var verr ValidationError
		if json.Unmarshal(raw, &verr) == nil && len(verr.Missing) > 0 {
			return &verr
		}
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("apiclient: unmarshal json: %w", err)
	}
	return nil
}
