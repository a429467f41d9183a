package hsreplay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/imalento/Arcane-Tracker/internal/common"
	"github.com/imalento/Arcane-Tracker/internal/logging"
)

// authTransport injects the headers every replay-service request carries:
// the static API key, the composed User-Agent, and — when a token is set —
// the Authorization header. Without a token the Authorization header is
// omitted entirely, which is how anonymous calls (CreateToken) work.
type authTransport struct {
	apiKey    string
	userAgent string
	tokens    *TokenSource
	base      http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("X-Api-Key", t.apiKey)
	r.Header.Set("User-Agent", t.userAgent)
	if token := t.tokens.Get(); token != "" {
		r.Header.Set("Authorization", "Token "+token)
	}
	return t.base.RoundTrip(r)
}

// HTTPService implements Service over net/http.
type HTTPService struct {
	baseURL   string
	uploadURL string
	tokens    *TokenSource
	client    *http.Client
	log       logging.Logger
}

// Options configures NewHTTPService.
type Options struct {
	BaseURL   string
	UploadURL string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
	Tokens    *TokenSource
	Logger    logging.Logger
}

// NewHTTPService builds the HTTP client for the replay service.
func NewHTTPService(opts Options) *HTTPService {
	return &HTTPService{
		baseURL:   opts.BaseURL,
		uploadURL: opts.UploadURL,
		tokens:    opts.Tokens,
		log:       opts.Logger,
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &authTransport{
				apiKey:    opts.APIKey,
				userAgent: opts.UserAgent,
				tokens:    opts.Tokens,
				base:      http.DefaultTransport,
			},
		},
	}
}

// do issues one JSON request/response round trip. A nil body sends an empty
// request; a nil out discards the response body.
func (s *HTTPService) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", common.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &common.RemoteError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// RequestUploadSlot POSTs the upload-slot request to the dedicated upload
// endpoint. The slot endpoint rejects anonymous callers, so a missing token
// fails fast without a network call.
func (s *HTTPService) RequestUploadSlot(ctx context.Context, req *UploadRequest) (*UploadResponse, error) {
	if s.tokens.Get() == "" {
		return nil, common.ErrAuthRequired
	}
	s.log.Debug(ctx, "requesting upload slot", "match_start", req.MatchStart, "game_type", req.GameType)

	var out UploadResponse
	if err := s.do(ctx, http.MethodPost, s.uploadURL, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateToken mints a new token. This is the one anonymous operation.
func (s *HTTPService) CreateToken(ctx context.Context, testData bool) (*Token, error) {
	var out Token
	err := s.do(ctx, http.MethodPost, s.endpoint("tokens/"), &TokenRequest{TestData: testData}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClaim requests a claim URL for the current token.
func (s *HTTPService) CreateClaim(ctx context.Context) (*Claim, error) {
	if s.tokens.Get() == "" {
		return nil, common.ErrAuthRequired
	}
	var out Claim
	if err := s.do(ctx, http.MethodPost, s.endpoint("claim/"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTokenInfo fetches the profile of the given token.
func (s *HTTPService) GetTokenInfo(ctx context.Context, token string) (*TokenInfo, error) {
	if s.tokens.Get() == "" {
		return nil, common.ErrAuthRequired
	}
	var out TokenInfo
	if err := s.do(ctx, http.MethodGet, s.endpoint("tokens/"+url.PathEscape(token)), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *HTTPService) endpoint(path string) string {
	return s.baseURL + path
}

var _ Service = (*HTTPService)(nil)
