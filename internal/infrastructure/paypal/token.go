package paypal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/domain"
	"golang.org/x/sync/singleflight"
)

type Token struct {
	AccessToken string
	TokenType   string
}

// Header renders the Authorization header value.
func (t Token) Header() string {
	return t.TokenType + " " + t.AccessToken
}

// TokenCache holds at most one bearer token.
type TokenCache interface {
	Get() (Token, bool)
	Set(token Token, ttl time.Duration)
	// Invalidate clears the slot while it still holds the token whose
	// Authorization header is header. A newer token is left in place.
	Invalidate(header string)
}

type MemoryTokenCache struct {
	mu        sync.RWMutex
	now       func() time.Time
	token     Token
	expiresAt time.Time
	valid     bool
}

// NewMemoryTokenCache returns an in-process cache. A nil clock means time.Now.
func NewMemoryTokenCache(now func() time.Time) *MemoryTokenCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryTokenCache{now: now}
}

func (c *MemoryTokenCache) Get() (Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.valid || !c.now().Before(c.expiresAt) {
		return Token{}, false
	}
	return c.token, true
}

func (c *MemoryTokenCache) Set(token Token, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiresAt = c.now().Add(ttl)
	c.valid = true
}

func (c *MemoryTokenCache) Invalidate(header string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid || c.token.Header() != header {
		return
	}
	c.token = Token{}
	c.valid = false
}

const tokenFlightKey = "paypal-token"

// TokenSource exchanges client credentials for a bearer token and caches it
// for expires_in minus the safety margin. Concurrent misses share one request.
type TokenSource struct {
	httpClient *http.Client
	api        string
	clientID   string
	secret     string
	margin     time.Duration
	cache      TokenCache
	group      singleflight.Group
}

func NewTokenSource(httpClient *http.Client, api, clientID, secret string, margin time.Duration, cache TokenCache) *TokenSource {
	return &TokenSource{
		httpClient: httpClient,
		api:        strings.TrimRight(api, "/"),
		clientID:   clientID,
		secret:     secret,
		margin:     margin,
		cache:      cache,
	}
}

// Header returns "<token_type> <access_token>" for the Authorization header.
func (s *TokenSource) Header(ctx context.Context) (string, error) {
	if token, ok := s.cache.Get(); ok {
		return token.Header(), nil
	}

	// The shared fetch must not be cancelled by whichever caller started it.
	fetchCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(tokenFlightKey, func() (interface{}, error) {
		if token, ok := s.cache.Get(); ok {
			return token, nil
		}
		return s.fetch(fetchCtx)
	})
	if err != nil {
		return "", err
	}
	return v.(Token).Header(), nil
}

// Invalidate drops the cached token if header was rendered from it. Requests
// that failed with a token another caller already replaced change nothing.
func (s *TokenSource) Invalidate(header string) {
	s.cache.Invalidate(header)
}

func (s *TokenSource) fetch(ctx context.Context) (Token, error) {
	if s.clientID == "" || s.secret == "" {
		return Token{}, domain.NewDataError("Missing PayPal clientId and/or secret.", false, nil)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.api+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("error creating token request: %w", err)
	}
	req.SetBasicAuth(s.clientID, s.secret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en_US")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Token{}, newAuthenticationError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Token{}, newAuthenticationError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return Token{}, newAuthenticationError(newAPIError(resp.StatusCode, body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return Token{}, newAuthenticationError(fmt.Errorf("error decoding token response: %w", err))
	}
	if tokenResp.AccessToken == "" {
		return Token{}, newAuthenticationError(errors.New("token response has no access_token"))
	}

	token := Token{AccessToken: tokenResp.AccessToken, TokenType: tokenResp.TokenType}
	if token.TokenType == "" {
		token.TokenType = "Bearer"
	}

	s.cache.Set(token, time.Duration(tokenResp.ExpiresIn)*time.Second-s.margin)

	return token, nil
}
