package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{name: "valid URL", baseURL: "http://localhost:7070"},
		{name: "trailing slash trimmed", baseURL: "http://localhost:7070/"},
		{name: "empty URL", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New(tt.baseURL)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "http://localhost:7070", client.baseURL)
			require.NotNil(t, client.httpClient.Jar, "default client carries a cookie jar")
		})
	}
}

func TestNewWithCookieJar(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client, err := New("http://localhost:7070", WithCookieJar(jar))
	require.NoError(t, err)
	assert.Same(t, jar, client.httpClient.Jar)
}

func TestClientGet(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Equal(t, "diversion-go", r.Header.Get("User-Agent"))
		json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "widget"})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, client.Get(context.Background(), "/api/widgets/3", &out))
	assert.Equal(t, 3, out.ID)
	assert.Equal(t, "widget", out.Name)
}

func TestClientPostSendsJSONBody(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/widgets", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "widget", in["name"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 9, "name": "widget"})
	}).Methods(http.MethodPost)

	server := httptest.NewServer(router)
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	var out struct {
		ID int `json:"id"`
	}
	require.NoError(t, client.Post(context.Background(), "/api/widgets", map[string]string{"name": "widget"}, &out))
	assert.Equal(t, 9, out.ID)
}

func TestClientNoContentResponses(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/widgets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPut, http.MethodDelete)
	router.HandleFunc("/api/empty", func(w http.ResponseWriter, r *http.Request) {
		// 200 with an empty body.
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, client.Put(ctx, "/api/widgets/3", map[string]string{"name": "renamed"}, nil))
	assert.NoError(t, client.Delete(ctx, "/api/widgets/3"))

	// An empty 200 body leaves out untouched rather than failing to decode.
	var out struct {
		ID int `json:"id"`
	}
	assert.NoError(t, client.Get(ctx, "/api/empty", &out))
	assert.Zero(t, out.ID)
}

func TestClientErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		contentType string
		wantCode    ErrorCode
		wantMsgs    []string
		wantSentnl  bool
	}{
		{
			name:     "structured validation error",
			status:   http.StatusBadRequest,
			body:     `{"errors":["Title is required","City is required for in-person events"]}`,
			wantCode: CodeValidation,
			wantMsgs: []string{"Title is required", "City is required for in-person events"},
		},
		{
			name:     "single message error",
			status:   http.StatusUnauthorized,
			body:     `{"message":"Invalid username or password"}`,
			wantCode: CodeMessage,
			wantMsgs: []string{"Invalid username or password"},
		},
		{
			name:       "bare 404",
			status:     http.StatusNotFound,
			body:       ``,
			wantCode:   CodeNotFound,
			wantSentnl: true,
		},
		{
			name:       "404 with message still matches sentinel",
			status:     http.StatusNotFound,
			body:       `{"message":"Event not found"}`,
			wantCode:   CodeMessage,
			wantMsgs:   []string{"Event not found"},
			wantSentnl: true,
		},
		{
			name:        "non-JSON body degrades to unknown",
			status:      http.StatusInternalServerError,
			body:        `<html><body>Internal Server Error</body></html>`,
			contentType: "text/html",
			wantCode:    CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.contentType != "" {
					w.Header().Set("Content-Type", tt.contentType)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := New(server.URL)
			require.NoError(t, err)

			err = client.Get(context.Background(), "/api/anything", nil)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMsgs, apiErr.Messages())
			assert.Equal(t, tt.wantSentnl, errors.Is(err, ErrNotFound))
		})
	}
}

func TestClientSessionCookiePersists(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123", Path: "/"})
		json.NewEncoder(w).Encode(map[string]string{"username": "casey"})
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/userprofile", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Not signed in"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"userId": 1, "displayName": "Casey"})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, client.Post(ctx, "/api/auth/login", map[string]string{"username": "casey"}, nil))

	var profile struct {
		DisplayName string `json:"displayName"`
	}
	require.NoError(t, client.Get(ctx, "/api/userprofile", &profile))
	assert.Equal(t, "Casey", profile.DisplayName)
}

func TestClientNilContext(t *testing.T) {
	client, err := New("http://localhost:7070")
	require.NoError(t, err)

	//nolint:staticcheck // verifying the nil guard
	assert.Error(t, client.Get(nil, "/api/widgets", nil))
}
