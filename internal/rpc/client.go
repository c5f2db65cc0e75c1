package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Имена серверных процедур
const (
	MethodCreateIssueFromContract = "create_issue_from_contract"
	MethodSendRenewalEmail        = "send_renewal_email"
)

// Caller вызывает именованную серверную процедуру и возвращает сырой ответ.
// Обработчики действий зависят от интерфейса, чтобы в тестах подставлять фейк.
type Caller interface {
	Call(ctx context.Context, method string, payload map[string]interface{}) ([]byte, error)
}

// MessageResponse — конверт ответа create_issue_from_contract:
// message содержит имя созданной записи, пусто при неудаче
type MessageResponse struct {
	Message string `json:"message"`
}

// EmailResult — результат send_renewal_email
type EmailResult struct {
	Success   bool   `json:"success"`
	Recipient string `json:"recipient"`
}

// EmailResponse — конверт ответа send_renewal_email, message может отсутствовать
type EmailResponse struct {
	Message *EmailResult `json:"message"`
}

// Client ходит в процедуры по HTTP: POST <base>/<method> с JSON телом
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Call(ctx context.Context, method string, payload map[string]interface{}) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("method base URL not configured")
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, method)
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("method %s status %d", method, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
