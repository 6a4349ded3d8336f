// Package middleware implements the HTTP client for the session/2FA
// middleware service the registration workflow authenticates against.
package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"soulclaim/config"
	"soulclaim/internal/domain/service"

	"github.com/pkg/errors"
)

// SessionClient implements service.SessionGateway. It holds no per-identity
// state; the session cookie travels explicitly with every call.
type SessionClient struct {
	baseURL    string
	httpClient *http.Client
	headers    config.MiddlewareConfig
	logger     *slog.Logger
}

// NewSessionClient is the constructor for SessionClient.
func NewSessionClient(cfg *config.Config, logger *slog.Logger) service.SessionGateway {
	return &SessionClient{
		baseURL: strings.TrimRight(cfg.Middleware.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Middleware.RequestTimeout,
		},
		headers: cfg.Middleware,
		logger:  logger,
	}
}

type challengeResponse struct {
	Challenge string `json:"challenge"`
	Expires   string `json:"expires"`
}

type storeMetadataRequest struct {
	SoulName string `json:"soulName"`
}

type storeMetadataResponse struct {
	MetadataTransaction struct {
		ID string `json:"id"`
	} `json:"metadataTransaction"`
}

type generateRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type generateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type checkSignatureRequest struct {
	Address   string `json:"address"`
	Signature string `json:"signature"`
}

type mintRequest struct {
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
	Signature   string `json:"signature"`
}

// GetChallenge implements service.SessionGateway. The Set-Cookie values of
// the response, joined with "; ", become the session token once the
// signature check passes.
func (c *SessionClient) GetChallenge(ctx context.Context) (*service.Challenge, error) {
	resp, err := c.send(ctx, http.MethodGet, "/session/get-challenge", nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body challengeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode challenge response")
	}

	return &service.Challenge{
		Challenge: body.Challenge,
		Expires:   body.Expires,
		Cookie:    strings.Join(resp.Header.Values("Set-Cookie"), "; "),
	}, nil
}

// CheckSignature implements service.SessionGateway.
func (c *SessionClient) CheckSignature(ctx context.Context, address, signature, cookie string) error {
	resp, err := c.send(ctx, http.MethodPost, "/session/check-signature",
		checkSignatureRequest{Address: address, Signature: signature}, cookie)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// CheckSession implements service.SessionGateway.
func (c *SessionClient) CheckSession(ctx context.Context, cookie string) error {
	resp, err := c.send(ctx, http.MethodGet, "/session/check", nil, cookie)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// StoreMetadata implements service.SessionGateway.
func (c *SessionClient) StoreMetadata(ctx context.Context, cookie, soulName string) (string, error) {
	resp, err := c.send(ctx, http.MethodPost, "/storage/store",
		storeMetadataRequest{SoulName: soulName}, cookie)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body storeMetadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decode metadata response")
	}
	if body.MetadataTransaction.ID == "" {
		return "", errors.New("metadata transaction id missing in response")
	}

	return body.MetadataTransaction.ID, nil
}

// GenerateCode implements service.SessionGateway.
func (c *SessionClient) GenerateCode(ctx context.Context, cookie, phoneNumber string) (*service.TwoFactorTicket, error) {
	resp, err := c.send(ctx, http.MethodPost, "/2fa/generate",
		generateRequest{PhoneNumber: phoneNumber}, cookie)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decode generate response")
	}

	return &service.TwoFactorTicket{Success: body.Success, Message: body.Message}, nil
}

// MintWithCode implements service.SessionGateway.
func (c *SessionClient) MintWithCode(ctx context.Context, cookie string, req service.MintRequest) error {
	resp, err := c.send(ctx, http.MethodPost, "/2fa/mint", mintRequest{
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Code:        req.Code,
		Signature:   req.Signature,
	}, cookie)
	if err != nil {
		return err
	}
	resp.Body.Close()

	return nil
}

// send builds and executes one request with the browser-emulating headers
// the middleware insists on, failing on any non-2xx status.
func (c *SessionClient) send(ctx context.Context, method, path string, body any, cookie string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Sec-Fetch-Dest", "empty")
	req.Header.Set("Sec-Fetch-Mode", "cors")
	req.Header.Set("Sec-Fetch-Site", "same-site")
	if c.headers.AcceptLanguage != "" {
		req.Header.Set("Accept-Language", c.headers.AcceptLanguage)
	}
	if c.headers.UserAgent != "" {
		req.Header.Set("User-Agent", c.headers.UserAgent)
	}
	if c.headers.Origin != "" {
		req.Header.Set("Origin", c.headers.Origin)
	}
	if c.headers.Referer != "" {
		req.Header.Set("Referer", c.headers.Referer)
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	c.logger.Debug("Middleware request", slog.String("method", method), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()

		return nil, errors.Errorf("middleware returned status %d for %s", resp.StatusCode, path)
	}

	return resp, nil
}
