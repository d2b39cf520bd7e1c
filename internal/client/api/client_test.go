package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

// writeEnvelope пишет ответ в формате {code, msg, data}
func writeEnvelope(t *testing.T, w http.ResponseWriter, status, code int, msg string, data interface{}) {
	t.Helper()
	resp := map[string]interface{}{"code": code, "msg": msg}
	if data != nil {
		resp["data"] = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешную аутентификацию
func TestClient_Login(t *testing.T) {
	expires := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeEnvelope(t, w, http.StatusOK, 0, "ok", api.TokenResponse{Token: "jwt", UserID: "u1", ExpiresAt: expires})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), api.LoginRequest{Username: "alice", Password: "secret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", resp.Token)
	assert.Equal(t, "u1", resp.UserID)
	assert.True(t, expires.Equal(resp.ExpiresAt))
}

// TestClient_EnvelopeErrors проверяет обработку ошибок сервера
func TestClient_EnvelopeErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantCode int
	}{
		{
			name: "non-zero code with 200",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, http.StatusOK, 404, "book not found", nil)
			},
			wantCode: 404,
		},
		{
			name: "http error with envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, http.StatusUnauthorized, 401, "invalid token", nil)
			},
			wantCode: 401,
		},
		{
			name: "http error without envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("bad gateway"))
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			err := NewClient(server.URL).DeleteBook(context.Background(), "b1")
			require.Error(t, err)
			assert.ErrorIs(t, err, api.ErrRemote)

			var apiErr *api.Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantCode, apiErr.Code)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	err := NewClient(server.URL).Health(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, api.ErrRemote)
}

func TestClient_PutBookSendsTokenAndRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/books/b-1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-1", r.Header.Get(api.HeaderDeviceID))

		var req api.BookRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "home", req.Name)
		assert.Equal(t, []string{"u2"}, req.Members)

		writeEnvelope(t, w, http.StatusOK, 0, "ok", nil)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")
	client.SetDeviceID("dev-1")
	err := client.PutBook(context.Background(), &models.Book{ID: "b-1", Name: "home", Members: []string{"u2"}})
	require.NoError(t, err)
}

func TestClient_PutBill(t *testing.T) {
	billTime := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bills/x1", r.URL.Path)

		var req api.BillRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "b1", req.BookID)
		assert.Equal(t, int64(1250), req.Money)
		assert.Equal(t, -1, req.Type)
		assert.True(t, billTime.Equal(req.Time))

		writeEnvelope(t, w, http.StatusOK, 0, "ok", nil)
	}))
	defer server.Close()

	bill := &models.Bill{ID: "x1", BookID: "b1", Money: 1250, Type: models.BillTypeExpenditure, Time: billTime}
	require.NoError(t, NewClient(server.URL).PutBill(context.Background(), bill))
}

func TestClient_Changes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync/changes", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("since"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		writeEnvelope(t, w, http.StatusOK, 0, "ok", api.ChangesResponse{
			Books:     []models.Book{{ID: "b1", Name: "home"}},
			Bills:     []models.Bill{{ID: "x", BookID: "b1", Deleted: true}},
			HasMore:   true,
			NextSince: 99,
		})
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Changes(context.Background(), 42, 10)
	require.NoError(t, err)
	require.Len(t, resp.Books, 1)
	require.Len(t, resp.Bills, 1)
	assert.True(t, resp.Bills[0].Deleted)
	assert.True(t, resp.HasMore)
	assert.Equal(t, int64(99), resp.NextSince)
}

func TestClient_UploadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/images", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "img-1", r.FormValue("id"))
		assert.Equal(t, "x1", r.FormValue("bill_id"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		data, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "receipt.jpg", hdr.Filename)
		assert.Equal(t, "jpeg-bytes", string(data))

		writeEnvelope(t, w, http.StatusOK, 0, "ok", nil)
	}))
	defer server.Close()

	img := &models.Image{ID: "img-1", BillID: "x1", FileName: "receipt.jpg"}
	err := NewClient(server.URL).UploadImage(context.Background(), img, strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
}

func TestClient_ListAndBroker(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/books", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, 0, "ok", []models.Book{{ID: "b1"}, {ID: "b2"}})
	})
	mux.HandleFunc("/api/v1/images", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "x1", r.URL.Query().Get("bill_id"))
		writeEnvelope(t, w, http.StatusOK, 0, "ok", []api.ImageInfo{{ID: "i1", BillID: "x1"}})
	})
	mux.HandleFunc("/api/v1/mqtt/broker", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, 0, "ok", api.BrokerInfo{Address: "localhost", TCPPort: 1883})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	books, err := client.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 2)

	images, err := client.ListImages(ctx, "x1")
	require.NoError(t, err)
	assert.Equal(t, "i1", images[0].ID)

	broker, err := client.BrokerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1883, broker.TCPPort)
}

func TestIsUnauthorized(t *testing.T) {
	assert.True(t, IsUnauthorized(&api.Error{Code: 401}))
	assert.False(t, IsUnauthorized(&api.Error{Code: 500}))
	assert.False(t, IsUnauthorized(errors.New("boom")))
}
