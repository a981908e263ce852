// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/oyou-server/internal/config"
	"github.com/MKhiriev/oyou-server/internal/logger"
	"github.com/MKhiriev/oyou-server/internal/utils"
	"github.com/MKhiriev/oyou-server/models"
)

type httpSearchAdapter struct {
	client *utils.HTTPClient
	path   string

	apiKey   string
	engineID string

	logger *logger.Logger
}

// NewHTTPSearchAdapter constructs the REST implementation of [SearchAdapter].
// cfg.BaseURL is split into the host part, used as the client base URL, and
// the endpoint path. Returns [ErrInvalidProviderURL] when cfg.BaseURL is
// empty or lacks a scheme or host.
func NewHTTPSearchAdapter(cfg config.Search, logger *logger.Logger) (SearchAdapter, error) {
	baseURL, path, err := splitProviderURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProviderURL, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(cfg.Timeout),
	)

	return &httpSearchAdapter{
		client:   client,
		path:     path,
		apiKey:   cfg.APIKey,
		engineID: cfg.EngineID,
		logger:   logger,
	}, nil
}

func splitProviderURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	return u.Scheme + "://" + u.Host, path, nil
}

// searchResponse is the subset of the provider payload the service uses.
// Everything else is dropped during decoding.
type searchResponse struct {
	Items []searchItem `json:"items"`
}

type searchItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
	PageMap     struct {
		CSEImage []struct {
			Src string `json:"src"`
		} `json:"cse_image"`
	} `json:"pagemap"`
}

func (i searchItem) toModel() models.SearchResult {
	result := models.SearchResult{
		Title:       i.Title,
		Link:        i.Link,
		Snippet:     i.Snippet,
		DisplayLink: i.DisplayLink,
	}
	if len(i.PageMap.CSEImage) > 0 && i.PageMap.CSEImage[0].Src != "" {
		src := i.PageMap.CSEImage[0].Src
		result.Image = &src
	}

	return result
}

// Search implements [SearchAdapter]. It issues GET <path>?key=&cx=&q= and
// maps every returned item.
func (h *httpSearchAdapter) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParams(map[string]string{
			"key": h.apiKey,
			"cx":  h.engineID,
			"q":   query,
		}).
		Get(h.path)
	if err != nil {
		log.Err(err).Str("func", "*httpSearchAdapter.Search").Msg("search request failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchRequest, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*httpSearchAdapter.Search").Int("status", resp.StatusCode()).Msg("search provider returned an error")
		return nil, err
	}

	var payload searchResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("func", "*httpSearchAdapter.Search").Msg("error decoding search response")
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	results := make([]models.SearchResult, 0, len(payload.Items))
	for _, item := range payload.Items {
		results = append(results, item.toModel())
	}

	return results, nil
}
