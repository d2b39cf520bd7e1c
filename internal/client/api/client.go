package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/ledgersync/internal/models"
	"github.com/iudanet/ledgersync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает операции удалённого API
type ClientAPI interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Health(ctx context.Context) error
	BrokerInfo(ctx context.Context) (*api.BrokerInfo, error)

	PutBook(ctx context.Context, book *models.Book) error
	DeleteBook(ctx context.Context, id string) error
	ListBooks(ctx context.Context) ([]models.Book, error)

	PutBill(ctx context.Context, bill *models.Bill) error
	DeleteBill(ctx context.Context, id string) error

	Changes(ctx context.Context, since int64, limit int) (*api.ChangesResponse, error)

	UploadImage(ctx context.Context, image *models.Image, content io.Reader) error
	ListImages(ctx context.Context, billID string) ([]api.ImageInfo, error)
	DeleteImage(ctx context.Context, id string) error
}

var _ ClientAPI = (*Client)(nil)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	deviceID   string
	mu         sync.RWMutex
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken sets the bearer token used for authenticated calls.
// An empty token disables the Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// SetDeviceID sets the id sent in the X-Device-ID header. The server stamps it
// as sender_id on notifications, so the device can recognise its own echoes.
func (c *Client) SetDeviceID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deviceID = id
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// BrokerInfo возвращает адрес MQTT брокера
func (c *Client) BrokerInfo(ctx context.Context) (*api.BrokerInfo, error) {
	var resp api.BrokerInfo
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/mqtt/broker", nil, &resp); err != nil {
		return nil, fmt.Errorf("broker info request failed: %w", err)
	}
	return &resp, nil
}

// PutBook создаёт или заменяет книгу на сервере
func (c *Client) PutBook(ctx context.Context, book *models.Book) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/books/"+url.PathEscape(book.ID), book, nil); err != nil {
		return fmt.Errorf("put book %s failed: %w", book.ID, err)
	}
	return nil
}

// DeleteBook удаляет книгу на сервере
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/books/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete book %s failed: %w", id, err)
	}
	return nil
}

// ListBooks возвращает книги, доступные пользователю
func (c *Client) ListBooks(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/books", nil, &books); err != nil {
		return nil, fmt.Errorf("list books failed: %w", err)
	}
	return books, nil
}

// PutBill создаёт или заменяет запись на сервере
func (c *Client) PutBill(ctx context.Context, bill *models.Bill) error {
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/bills/"+url.PathEscape(bill.ID), bill, nil); err != nil {
		return fmt.Errorf("put bill %s failed: %w", bill.ID, err)
	}
	return nil
}

// DeleteBill удаляет запись на сервере
func (c *Client) DeleteBill(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/bills/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete bill %s failed: %w", id, err)
	}
	return nil
}

// Changes возвращает изменения на сервере после since (unix ms)
func (c *Client) Changes(ctx context.Context, since int64, limit int) (*api.ChangesResponse, error) {
	q := url.Values{}
	q.Set("since", strconv.FormatInt(since, 10))
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp api.ChangesResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/changes?"+q.Encode(), nil, &resp); err != nil {
		return nil, fmt.Errorf("changes request failed: %w", err)
	}
	return &resp, nil
}

// UploadImage загружает файл картинки multipart-запросом
func (c *Client) UploadImage(ctx context.Context, image *models.Image, content io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("id", image.ID); err != nil {
		return fmt.Errorf("failed to write form field: %w", err)
	}
	if err := mw.WriteField("bill_id", image.BillID); err != nil {
		return fmt.Errorf("failed to write form field: %w", err)
	}

	name := image.FileName
	if name == "" {
		name = filepath.Base(image.LocalPath)
	}
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to read image content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/images", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("upload image %s failed: %w", image.ID, err)
	}
	return nil
}

// ListImages возвращает метаданные картинок записи
func (c *Client) ListImages(ctx context.Context, billID string) ([]api.ImageInfo, error) {
	var images []api.ImageInfo
	path := "/api/v1/images?bill_id=" + url.QueryEscape(billID)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &images); err != nil {
		return nil, fmt.Errorf("list images failed: %w", err)
	}
	return images, nil
}

// DeleteImage удаляет картинку на сервере
func (c *Client) DeleteImage(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/api/v1/images/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete image %s failed: %w", id, err)
	}
	return nil
}

// doRequest выполняет JSON запрос и разбирает конверт ответа
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.mu.RLock()
	token, deviceID := c.token, c.deviceID
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if deviceID != "" {
		req.Header.Set(api.HeaderDeviceID, deviceID)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Сервер всегда отвечает конвертом; если его нет, ориентируемся на HTTP статус
	var envelope api.Response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &api.Error{Code: resp.StatusCode, Msg: strings.TrimSpace(string(respBody))}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Code != api.CodeOK {
		return &api.Error{Code: envelope.Code, Msg: envelope.Msg}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &api.Error{Code: resp.StatusCode, Msg: envelope.Msg}
	}

	// Декодируем успешный ответ
	if result != nil && len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		if err := json.Unmarshal(envelope.Data, result); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// IsUnauthorized reports whether err is a remote 401 (expired or invalid token).
func IsUnauthorized(err error) bool {
	var apiErr *api.Error
	return errors.As(err, &apiErr) && apiErr.Code == api.CodeUnauthorized
}
