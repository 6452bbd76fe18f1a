package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/projexi/projexi/api"
	"github.com/projexi/projexi/pkg/models"
)

// authedRequest builds a request carrying the context values the JWT
// middleware would have set for the given caller.
func authedRequest(t *testing.T, method, path string, body any, profileID string, role models.Role) *http.Request {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	ctx := context.WithValue(req.Context(), api.CtxProfileID, profileID)
	if role != "" {
		ctx = context.WithValue(ctx, api.CtxRole, role)
	}
	return req.WithContext(ctx)
}

func decodeBody(t *testing.T, res *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
