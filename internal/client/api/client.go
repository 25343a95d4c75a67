package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/iudanet/gophmedia/pkg/api"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
	refreshPath   = "/api/user"

	defaultTimeout = 30 * time.Second
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI is the server surface used by client services
type ClientAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Refresh(ctx context.Context) (*api.LoginResponse, error)
	Signout(ctx context.Context) error
	ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error
	SetupStatus(ctx context.Context) (*api.SetupStatusResponse, error)
	Setup(ctx context.Context, req api.SetupRequest) error
	ListDir(ctx context.Context, path string) ([]api.FileEntry, error)
	Text(ctx context.Context, path string) (string, error)
	Track(ctx context.Context, path string, index int) (string, error)
	Download(ctx context.Context, path string, dst Destination) (*DownloadResult, error)
	Tokens() Tokens
	SetTokens(t Tokens)
	ClearTokens()
}

// Tokens is the pair of session cookie values
type Tokens struct {
	Access  string
	Refresh string
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient   *http.Client
	streamClient *http.Client // без общего таймаута: загрузка большого файла длится дольше
	jar          *cookiejar.Jar
	baseURL      *url.URL
	onRefresh    func(ctx context.Context, resp *api.LoginResponse)
	refreshMu    sync.Mutex // не дает параллельным запросам обновлять сессию одновременно
}

// NewClient создает новый API клиент
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	// Ограничиваем количество редиректов
	checkRedirect := func(req *http.Request, via []*http.Request) error {
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}

	return &Client{
		baseURL: u,
		jar:     jar,
		httpClient: &http.Client{
			Jar:           jar,
			Timeout:       defaultTimeout,
			CheckRedirect: checkRedirect,
		},
		streamClient: &http.Client{
			Jar:           jar,
			CheckRedirect: checkRedirect,
		},
	}, nil
}

// BaseURL returns the server address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SetTimeout overrides the per-request timeout; zero disables it
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}

// OnRefresh registers a callback invoked after tokens were rotated by a retry
func (c *Client) OnRefresh(fn func(ctx context.Context, resp *api.LoginResponse)) {
	c.onRefresh = fn
}

// Login выполняет аутентификацию пользователя, cookies сохраняются в jar
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/login", req, &resp, false); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Refresh обменивает refresh cookie на новую пару токенов
func (c *Client) Refresh(ctx context.Context) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/refresh", nil, &resp, false); err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}
	return &resp, nil
}

// Signout просит сервер удалить cookies сессии
func (c *Client) Signout(ctx context.Context) error {
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/signout", nil, nil, false); err != nil {
		return fmt.Errorf("signout request failed: %w", err)
	}
	return nil
}

// ChangePassword меняет пароль; сервер завершает текущую сессию
func (c *Client) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/password", req, nil, true); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}

// SetupStatus сообщает, настроен ли сервер
func (c *Client) SetupStatus(ctx context.Context) (*api.SetupStatusResponse, error) {
	var resp api.SetupStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/setup", nil, &resp, false); err != nil {
		return nil, fmt.Errorf("setup status request failed: %w", err)
	}
	return &resp, nil
}

// Setup выполняет первичную настройку сервера
func (c *Client) Setup(ctx context.Context, req api.SetupRequest) error {
	if err := c.doJSON(ctx, http.MethodPost, "/api/setup", req, nil, false); err != nil {
		return fmt.Errorf("setup request failed: %w", err)
	}
	return nil
}

// ListDir returns the entries of a directory relative to the storage root
func (c *Client) ListDir(ctx context.Context, path string) ([]api.FileEntry, error) {
	var entries []api.FileEntry
	target := "/api/dir?path=" + EscapeQueryValue(path)
	if err := c.doJSON(ctx, http.MethodGet, target, nil, &entries, true); err != nil {
		return nil, fmt.Errorf("list request failed: %w", err)
	}
	return entries, nil
}

// Text returns a text file decoded to UTF-8 by the server
func (c *Client) Text(ctx context.Context, path string) (string, error) {
	body, err := c.doText(ctx, "/api/file/text?path="+EscapeQueryValue(path))
	if err != nil {
		return "", fmt.Errorf("text request failed: %w", err)
	}
	return body, nil
}

// Track returns a subtitle track of a media file as WebVTT
func (c *Client) Track(ctx context.Context, path string, index int) (string, error) {
	target := "/api/file/track?path=" + EscapeQueryValue(path) + "&index=" + strconv.Itoa(index)
	body, err := c.doText(ctx, target)
	if err != nil {
		return "", fmt.Errorf("track request failed: %w", err)
	}
	return body, nil
}

// Tokens returns the session cookies currently held by the jar
func (c *Client) Tokens() Tokens {
	var t Tokens
	for _, ck := range c.jar.Cookies(c.urlFor(refreshPath + "/refresh")) {
		switch ck.Name {
		case accessCookie:
			t.Access = ck.Value
		case refreshCookie:
			t.Refresh = ck.Value
		}
	}
	return t
}

// SetTokens puts a stored session back into the jar
func (c *Client) SetTokens(t Tokens) {
	if t.Access != "" {
		c.jar.SetCookies(c.urlFor("/"), []*http.Cookie{{Name: accessCookie, Value: t.Access, Path: "/"}})
	}
	if t.Refresh != "" {
		c.jar.SetCookies(c.urlFor(refreshPath+"/"), []*http.Cookie{{Name: refreshCookie, Value: t.Refresh, Path: refreshPath}})
	}
}

// ClearTokens drops both session cookies
func (c *Client) ClearTokens() {
	c.jar.SetCookies(c.urlFor("/"), []*http.Cookie{{Name: accessCookie, Path: "/", MaxAge: -1}})
	c.jar.SetCookies(c.urlFor(refreshPath+"/"), []*http.Cookie{{Name: refreshCookie, Path: refreshPath, MaxAge: -1}})
}

func (c *Client) urlFor(target string) *url.URL {
	u := *c.baseURL
	path, rawQuery, _ := strings.Cut(target, "?")
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		unescaped = path
	}
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + unescaped
	u.RawPath = strings.TrimRight(c.baseURL.EscapedPath(), "/") + path
	u.RawQuery = rawQuery
	return &u
}

// send выполняет запрос; при 401 один раз обновляет токены и повторяет его
func (c *Client) send(ctx context.Context, hc *http.Client, build func() (*http.Request, error), retry bool) (*http.Response, error) {
	req, err := build()
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusUnauthorized || !retry {
		return resp, nil
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if err := c.refreshOnce(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	req, err = build()
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err = hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) refreshOnce(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	if c.Tokens().Refresh == "" {
		return errors.New("no refresh token")
	}

	resp, err := c.Refresh(ctx)
	if err != nil {
		return err
	}
	if c.onRefresh != nil {
		c.onRefresh(ctx, resp)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, target string, body []byte) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.urlFor(target).String(), reader)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	}
}

// doJSON выполняет HTTP запрос с JSON телом и ответом
func (c *Client) doJSON(ctx context.Context, method, target string, body, result any, retry bool) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	resp, err := c.send(ctx, c.httpClient, c.newRequest(ctx, method, target, payload), retry)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newStatusError(resp.StatusCode, respBody)
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) doText(ctx context.Context, target string) (string, error) {
	resp, err := c.send(ctx, c.httpClient, c.newRequest(ctx, http.MethodGet, target, nil), true)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", newStatusError(resp.StatusCode, respBody)
	}
	return string(respBody), nil
}

// EscapeQueryValue encodes a virtual path for a query parameter so that the
// server's single percent-decoding restores it exactly
func EscapeQueryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// EscapePath encodes a virtual path for the file route, keeping slashes
func EscapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
