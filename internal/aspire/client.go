package aspire

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/config"
)

const pageSize = 100

// APIError — ошибка Aspire API с кодом ответа
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("aspire API: %s (status %d)", e.Message, e.StatusCode)
	}
	return "aspire API: " + e.Message
}

// Client ходит в Aspire Cloud API.
// Авторизация: POST /Authorization с ClientID/Secret, токен кэшируется.
// Пагинация через $top и $skip, фильтрация через $filter.
// Один клиент делят фоновая, ручная и плановая синхронизации,
// поэтому кэш токена под мьютексом.
type Client struct {
	baseURL  string
	clientID string
	apiKey   string
	http     *http.Client

	tokenMu      sync.Mutex
	token        string
	tokenExpires time.Time
}

func NewClient(cfg config.AspireConfig) (*Client, error) {
	if cfg.BaseURL == "" || cfg.ClientID == "" || cfg.APIKey == "" {
		return nil, &APIError{Message: "credentials not configured: set aspire.base_url, aspire.client_id and aspire.api_key in config.json"}
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		clientID: cfg.ClientID,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *Client) authToken(ctx context.Context) (string, error) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpires) {
		return c.token, nil
	}

	payload, _ := json.Marshal(map[string]string{"ClientID": c.clientID, "Secret": c.apiKey})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/Authorization", bytes.NewBuffer(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Message: "authorization failed", StatusCode: resp.StatusCode}
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", err
	}
	if auth.Token == "" {
		return "", &APIError{Message: "authorization returned empty token"}
	}

	c.token = auth.Token
	// Срок жизни токена Aspire не сообщает, держим час с запасом
	c.tokenExpires = time.Now().Add(50 * time.Minute)
	return c.token, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	token, err := c.authToken(ctx)
	if err != nil {
		return nil, err
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Message: "GET " + path + " failed", StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

// Contracts выгружает контракты страницами. Пустой filter — все.
func (c *Client) Contracts(ctx context.Context, filter string) ([]Contract, error) {
	var all []Contract
	skip := 0
	for {
		query := url.Values{}
		query.Set("$top", strconv.Itoa(pageSize))
		query.Set("$skip", strconv.Itoa(skip))
		if filter != "" {
			query.Set("$filter", filter)
		}

		raw, err := c.get(ctx, "/Contracts", query)
		if err != nil {
			return nil, err
		}

		var page []Contract
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("failed to parse contracts page: %w", err)
		}
		all = append(all, page...)

		if len(page) < pageSize {
			return all, nil
		}
		skip += pageSize
	}
}
