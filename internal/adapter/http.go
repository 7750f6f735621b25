// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"

	"github.com/okulikov/go-save-sync/internal/config"
	"github.com/okulikov/go-save-sync/internal/logger"
	"github.com/okulikov/go-save-sync/internal/utils"
	"github.com/okulikov/go-save-sync/models"
)

type httpTransport struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker[*resty.Response]

	token string

	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the resolved base URL and request
// timeout. A timed-out request surfaces as [ErrNetwork], the same as any
// other transport failure.
//
// Outbound calls go through a circuit breaker: once the remote store has
// failed repeatedly, further calls fail fast with [ErrNetwork] instead of
// burning a full timeout each, until a probe succeeds again.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPTransport(adapterCfg config.Adapter, appCfg config.App, log *logger.Logger) (Transport, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	breaker := gobreaker.NewCircuitBreaker[*resty.Response](gobreaker.Settings{
		Name:    "remote-save-store",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("transport circuit breaker state changed")
		},
	})

	return &httpTransport{
		client:  client,
		breaker: breaker,
		token:   appCfg.Token,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [Transport]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpTransport) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [Transport].
func (h *httpTransport) Token() string {
	return h.token
}

// Upload implements [Transport]. It PUTs the document to PUT /api/save/ with
// the caller's expected remote version for the server-side staleness check.
// Returns [ErrConflict] (wrapped) on HTTP 409.
func (h *httpTransport) Upload(ctx context.Context, doc models.SaveDocument, expectedVersion uint64) (models.RemoteState, error) {
	req := models.UploadRequest{Document: doc, ExpectedVersion: expectedVersion}

	resp, err := h.execute(func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			Put("/api/save/")
	})
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteState{}, err
	}

	var ur models.UploadResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return models.RemoteState{}, fmt.Errorf("decode upload response: %w", err)
	}

	return ur.RemoteState, nil
}

// Download implements [Transport]. It GETs the full document from
// GET /api/save/. Returns [ErrNotFound] (wrapped) when no remote document
// exists.
func (h *httpTransport) Download(ctx context.Context) (models.SaveDocument, error) {
	resp, err := h.execute(func() (*resty.Response, error) {
		return h.authedRequest(ctx).Get("/api/save/")
	})
	if err != nil {
		return models.SaveDocument{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveDocument{}, err
	}

	var doc models.SaveDocument
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.SaveDocument{}, fmt.Errorf("decode download response: %w", err)
	}

	return doc, nil
}

// GetRemoteVersion implements [Transport]. It GETs the version probe from
// GET /api/save/version.
func (h *httpTransport) GetRemoteVersion(ctx context.Context) (models.RemoteState, error) {
	resp, err := h.execute(func() (*resty.Response, error) {
		return h.authedRequest(ctx).Get("/api/save/version")
	})
	if err != nil {
		return models.RemoteState{}, fmt.Errorf("get remote version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteState{}, err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return models.RemoteState{}, fmt.Errorf("decode version response: %w", err)
	}

	return vr.RemoteState, nil
}

func (h *httpTransport) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// execute routes a call through the circuit breaker and folds every
// transport-level failure into [ErrNetwork]. HTTP status errors are left to
// mapHTTPError so a 4xx response does not trip the breaker.
func (h *httpTransport) execute(call func() (*resty.Response, error)) (*resty.Response, error) {
	resp, err := h.breaker.Execute(call)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: circuit open", ErrNetwork)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	return resp, nil
}
