package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a recording HTTP stub for third-party APIs.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]map[string]any
	responses map[string]stubResponse
}

type stubResponse struct {
	status int
	body   any
}

// NewApiServer creates an unstarted stub.
func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]map[string]any{},
		responses: map[string]stubResponse{},
	}
}

// Start begins serving on a random local port.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the stub.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// GetUrl returns the stub base URL.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse answers method+path with status and body until reset.
func (a *ApiMock) SetResponse(method, path string, status int, body any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[method+path] = stubResponse{status: status, body: body}
}

// RequestCount returns how many calls method+path has received.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// GetRequestBody returns the decoded JSON body of the index-th call.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.requests[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

// Reset forgets recorded calls and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]map[string]any{}
	a.responses = map[string]stubResponse{}
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	request := map[string]any{}
	_ = json.Unmarshal(body, &request)

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	resp, ok := a.responses[key]
	a.mu.Unlock()

	if !ok {
		resp = stubResponse{status: http.StatusOK, body: map[string]any{}}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_ = json.NewEncoder(w).Encode(resp.body)
}
