package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// widgetTokenHeader заголовок с anti-forgery токеном виджета.
// Клиент прикрепляет токен как есть, не интерпретируя его.
const widgetTokenHeader = "X-Widget-Token"

// Имена операций и исходов для учета исходящих запросов
const (
	opServices        = "services"
	opExtras          = "extras"
	opZipSurcharge    = "zip_surcharge"
	opZipAvailability = "zip_availability"
	opSlots           = "slots"
	opSubmit          = "submit"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Observer получает исход каждого запроса к бэкенду: операция и
// "success"/"error". nil отключает учет
type Observer func(operation, outcome string)

// Client клиент для работы с booking-бэкендом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	observe    Observer
}

// NewClient создает новый экземпляр клиента booking-бэкенда
func NewClient(baseURL string, timeout time.Duration, log Logger, observe Observer) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		observe: observe,
	}
}

// report отправляет исход запроса наблюдателю метрик
func (c *Client) report(operation string, err error) {
	if c.observe == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	c.observe(operation, outcome)
}

// FetchServices получает список активных услуг каталога
func (c *Client) FetchServices(ctx context.Context, token string) ([]Service, error) {
	var services []Service
	if err := c.getJSON(ctx, token, opServices, c.baseURL+"/internal/catalog/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

// FetchExtras получает дополнительные услуги, доступные для указанной услуги
func (c *Client) FetchExtras(ctx context.Context, token string, serviceID int64) ([]Extra, error) {
	var extras []Extra
	endpoint := fmt.Sprintf("%s/internal/catalog/services/%d/extras", c.baseURL, serviceID)
	if err := c.getJSON(ctx, token, opExtras, endpoint, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// FetchZipSurcharge получает надбавку к цене для указанного индекса
func (c *Client) FetchZipSurcharge(ctx context.Context, token string, zipCode string) (float64, error) {
	var resp ZipSurchargeResponse
	endpoint := fmt.Sprintf("%s/internal/zips/%s/surcharge", c.baseURL, url.PathEscape(zipCode))
	if err := c.getJSON(ctx, token, opZipSurcharge, endpoint, &resp); err != nil {
		return 0, err
	}
	return resp.Surcharge, nil
}

// CheckZipAvailability проверяет, обслуживается ли указанный индекс
func (c *Client) CheckZipAvailability(ctx context.Context, token string, zipCode string) (*ZipAvailabilityResponse, error) {
	var resp ZipAvailabilityResponse
	endpoint := fmt.Sprintf("%s/internal/zips/%s/availability", c.baseURL, url.PathEscape(zipCode))
	if err := c.getJSON(ctx, token, opZipAvailability, endpoint, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FetchSlots получает слоты на дату с учетом требуемой длительности
func (c *Client) FetchSlots(ctx context.Context, token string, date time.Time, durationMinutes int) ([]Slot, error) {
	var resp SlotsResponse
	endpoint := fmt.Sprintf("%s/internal/slots?date=%s&durationMinutes=%d",
		c.baseURL, date.Format("2006-01-02"), durationMinutes)
	if err := c.getJSON(ctx, token, opSlots, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.Slots, nil
}

// SubmitBooking отправляет заявку на создание бронирования
func (c *Client) SubmitBooking(ctx context.Context, token string, payload *SubmitRequest) (result *SubmitResult, err error) {
	defer func() { c.report(opSubmit, err) }()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/internal/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(widgetTokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusConflict, http.StatusUnprocessableEntity, http.StatusBadRequest:
		// Бэкенд отклонил бронирование - вытаскиваем сообщение для пользователя
		var errResp ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrRejected, errResp.Message)
		}
		return nil, ErrRejected
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	result = &SubmitResult{}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, token, operation, endpoint string, out interface{}) (err error) {
	defer func() { c.report(operation, err) }()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(widgetTokenHeader, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
