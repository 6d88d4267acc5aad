//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// HTTPClient represents an HTTP test client
type HTTPClient struct {
	router *gin.Engine
	token  string
}

// NewHTTPClient creates a new HTTP client for testing
func NewHTTPClient(router *gin.Engine, token string) *HTTPClient {
	return &HTTPClient{
		router: router,
		token:  token,
	}
}

// Response represents an HTTP response
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

func (c *HTTPClient) do(method, path string, body any) (*Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequest(method, "/api/v1"+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, httpReq)

	return &Response{
		StatusCode: w.Code,
		Body:       w.Body.Bytes(),
		Headers:    w.Header(),
	}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.do(http.MethodGet, path, nil)
}

func (c *HTTPClient) POST(path string, body any) (*Response, error) {
	return c.do(http.MethodPost, path, body)
}

func (c *HTTPClient) PUT(path string, body any) (*Response, error) {
	return c.do(http.MethodPut, path, body)
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.do(http.MethodDelete, path, nil)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData decodes the data member of the response envelope into target
func (r *Response) DecodeData(target any) error {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return err
	}
	return json.Unmarshal(env.Data, target)
}

// GetErrorMessage extracts the envelope message
func (r *Response) GetErrorMessage() string {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return string(r.Body)
	}
	return env.Message
}
