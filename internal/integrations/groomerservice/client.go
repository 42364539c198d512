package groomerservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с GroomerService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GroomerService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetGroomer получает карточку грумера по ID
// Карточка содержит заявленную вместимость и отображаемые атрибуты,
// поэтому один вызов закрывает проверку существования, чтение лимита
// и обогащение выдачи
func (c *Client) GetGroomer(ctx context.Context, groomerID string) (*Groomer, error) {
	url := fmt.Sprintf("%s/internal/groomers/%s", c.baseURL, groomerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrGroomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var groomer Groomer
	if err := json.NewDecoder(resp.Body).Decode(&groomer); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &groomer, nil
}

// Exists проверяет существование грумера по ID
func (c *Client) Exists(ctx context.Context, groomerID string) (bool, error) {
	_, err := c.GetGroomer(ctx, groomerID)
	if errors.Is(err, ErrGroomerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
