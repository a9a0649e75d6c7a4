// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mission-planner/internal/config"
	"github.com/MKhiriev/mission-planner/internal/logger"
	"github.com/MKhiriev/mission-planner/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://api.example.org/ ", want: "https://api.example.org"},
		{raw: "http://10.0.0.1:9000", want: "http://10.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "localhost:1")
	a.SetToken("  abc \n")
	assert.Equal(t, "abc", a.Token())
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "ops", Password: "pw"}, creds)

		w.Header().Set("Authorization", "Bearer header.jwt.token")
		writeJSON(w, http.StatusOK, `{"token":"header.jwt.token","tokenType":"Bearer","username":"ops","roles":["USER"]}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "ops", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "ops", got.Username)
	assert.Equal(t, []string{"USER"}, got.Roles)
	assert.Equal(t, "header.jwt.token", a.Token())
}

func TestRegister_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/register", r.URL.Path)
		writeJSON(w, http.StatusCreated, `{"token":"body.jwt.token","tokenType":"Bearer","username":"new"}`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.Credentials{Username: "new", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "body.jwt.token", a.Token())
}

func TestAuth_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		header  string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: "Unauthorized", wantErr: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, body: "Conflict", wantErr: ErrConflict},
		{name: "bad request", status: http.StatusBadRequest, body: "Invalid JSON was passed", wantErr: ErrBadRequest},
		{name: "no token at all", status: http.StatusOK, body: `{}`},
		{name: "malformed header", status: http.StatusOK, body: `{}`, header: "Token abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("Authorization", tt.header)
				}
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.Credentials{Username: "ops", Password: "pw"})

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, a.Token())
		})
	}
}

// ── records ─────────────────────────────────────────────────────────────────

func TestList_SendsTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/mission-asset", r.URL.Path)
		assert.Equal(t, "Bearer t0k", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `[{"id":1,"name":"Drone"},{"id":2}]`)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("t0k")

	records, err := a.List(context.Background(), "mission-asset")

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.JSONEq(t, `{"id":1,"name":"Drone"}`, string(records[0]))
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/mission/42", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "mission", 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUpdateDelete(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()

		switch r.Method {
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"title":"Recon"}`, string(body))
			writeJSON(w, http.StatusCreated, `{"id":5,"title":"Recon"}`)
		case http.MethodPut:
			writeJSON(w, http.StatusOK, `{"id":5,"title":"Recon v2"}`)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	created, err := a.Create(ctx, "intelligence", map[string]string{"title": "Recon"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":5,"title":"Recon"}`, string(created))

	updated, err := a.Update(ctx, "intelligence", 5, map[string]string{"title": "Recon v2"})
	require.NoError(t, err)
	assert.Contains(t, string(updated), "Recon v2")

	require.NoError(t, a.Delete(ctx, "intelligence", 5))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/v1/intelligence",
		"PUT /api/v1/intelligence/5",
		"DELETE /api/v1/intelligence/5",
	}, calls)
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.Delete(context.Background(), "mission", 1)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDelete_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Delete(context.Background(), "mission", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

// ── actuator ────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"up", http.StatusOK, `{"status":"UP"}`, models.StatusUp},
		{"down", http.StatusServiceUnavailable, `{"status":"DOWN"}`, models.StatusDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/actuator/health", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).Health(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"version":"1.0.0","commit":"abc","date":"N/A"}`)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Info(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.AppBuildInfo{Version: "1.0.0", Commit: "abc", Date: "N/A"}, got)
}
