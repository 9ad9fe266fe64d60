//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Request is one call against a handler. A nil Body sends no payload and no
// Content-Type; an empty Token sends no Authorization header.
type Request struct {
	Method string
	Path   string
	Body   any
	Token  string
	Header http.Header
}

func Do(t *testing.T, h http.Handler, r Request) *httptest.ResponseRecorder {
	t.Helper()

	var payload io.Reader = http.NoBody
	if r.Body != nil {
		raw, ok := r.Body.([]byte)
		if !ok {
			var err error
			raw, err = json.Marshal(r.Body)
			require.NoError(t, err, "encode request body")
		}
		payload = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(r.Method, r.Path, payload)
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if r.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// PerformRequest is Do for the common method/path/body/token case. A []byte
// body is sent as-is, which lets tests post malformed JSON.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Do(t, router, Request{Method: method, Path: path, Body: body, Token: authToken})
}

func DecodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "decode response: %s", w.Body.String())
	return out
}
