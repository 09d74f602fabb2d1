// Package client HTTP клиент API tagihan.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
)

const (
	RouteLogin         = "/api/user/login"
	RouteCustomers     = "/api/customers"
	RouteStatement     = "/api/customers/%d/statement"
	RouteCustomerLines = "/api/customers/%d/lines"
	RouteLine          = "/api/lines/%d"
	RouteLinePayments  = "/api/lines/%d/payments"
	RouteLineComplete  = "/api/lines/%d/complete"
	RouteLineCancel    = "/api/lines/%d/cancel"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60 * time.Second
)

// ErrUnsupportedStatus переход в этот статус через API невозможен.
var ErrUnsupportedStatus = errors.New("unsupported target status")

// HTTPClient ходит в API tagihan от имени пользователя с токеном token.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL, token string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.DefaultClient,
	}
}

// Login возвращает JWT токен пользователя. Клиент должен быть создан без токена, иначе сервер
// ответит 401.
func (c HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var res struct {
		Token string `json:"token"`
	}
	body := map[string]string{"login": username, "password": password}
	if err := c.do(ctx, http.MethodPost, RouteLogin, body, &res); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return res.Token, nil
}

// ListCustomers клиенты, разделенные сервером на должников и остальных.
func (c HTTPClient) ListCustomers(ctx context.Context) (*dto.Overview, error) {
	var overview dto.Overview
	if err := c.do(ctx, http.MethodGet, RouteCustomers, nil, &overview); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return &overview, nil
}

// ListLines все строки клиента вместе с платежами.
func (c HTTPClient) ListLines(ctx context.Context, customerID int64) ([]dto.Line, error) {
	var lines []dto.Line
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(RouteCustomerLines, customerID), nil, &lines); err != nil {
		return nil, fmt.Errorf("list lines of customer %d: %w", customerID, err)
	}
	return lines, nil
}

func (c HTTPClient) GetLine(ctx context.Context, lineID int64) (*dto.Line, error) {
	var line dto.Line
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf(RouteLine, lineID), nil, &line); err != nil {
		return nil, fmt.Errorf("get line %d: %w", lineID, err)
	}
	return &line, nil
}

// Statement пустая category означает любую категорию.
func (c HTTPClient) Statement(
	ctx context.Context,
	customerID int64,
	category domain.CategoryType,
) (*dto.Statement, error) {
	path := fmt.Sprintf(RouteStatement, customerID)
	if category != "" {
		path += "?" + url.Values{"category": {string(category)}}.Encode()
	}

	var st dto.Statement
	if err := c.do(ctx, http.MethodGet, path, nil, &st); err != nil {
		return nil, fmt.Errorf("statement of customer %d: %w", customerID, err)
	}
	return &st, nil
}

// SubmitPayment amount передается серверу как есть, разбор суммы выполняет сервер.
func (c HTTPClient) SubmitPayment(
	ctx context.Context,
	lineID int64,
	amount any,
	paidOn time.Time,
) (*dto.PaymentResult, error) {
	body := dto.PaymentRequest{Amount: amount}
	if !paidOn.IsZero() {
		body.PaidOn = paidOn.Format(dto.DateLayout)
	}

	var res dto.PaymentResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf(RouteLinePayments, lineID), body, &res); err != nil {
		return nil, fmt.Errorf("submit payment for line %d: %w", lineID, err)
	}
	return &res, nil
}

// TransitionStatus переводит строку в COMPLETED или CANCELLED.
func (c HTTPClient) TransitionStatus(
	ctx context.Context,
	lineID int64,
	status domain.LineStatusType,
) (*dto.Line, error) {
	var route string
	switch status {
	case domain.LineStatusCompleted:
		route = RouteLineComplete
	case domain.LineStatusCancelled:
		route = RouteLineCancel
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedStatus, status)
	}

	var line dto.Line
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf(route, lineID), nil, &line); err != nil {
		return nil, fmt.Errorf("transition line %d to %s: %w", lineID, status, err)
	}
	return &line, nil
}

// do выполняет запрос и разбирает ответ в out.
// При ответе сервера со статусом вне 2xx возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
//
//nolint:nonamedreturns
func (c HTTPClient) do(ctx context.Context, method, path string, body any, out any) (err error) {
	var reqBody io.Reader
	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %s", marshalErr.Error())
		}
		reqBody = bytes.NewReader(payload)
	}

	req, reqErr := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return fmt.Errorf("read response: %s", readErr.Error())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var rejection dto.Rejection
		_ = json.Unmarshal(respBody, &rejection)
		return NewStatusCodeError(resp.StatusCode, rejection.Error)
	}

	if out == nil {
		return nil
	}
	if jsonErr := json.Unmarshal(respBody, out); jsonErr != nil {
		return fmt.Errorf("parse response: %s", jsonErr.Error())
	}
	return nil
}

// parseRetryAfter в случае ошибки или значения вне [minRetryAfter, maxRetryAfter] возвращает 60 секунд.
func parseRetryAfter(v string) time.Duration {
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < minRetryAfter || seconds > maxRetryAfter {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
