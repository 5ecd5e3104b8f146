package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/bizmate/backend/internal/domain/integration"
)

const (
	// maxKakaoResponseSize limits the response body size to prevent memory exhaustion
	maxKakaoResponseSize = 1 * 1024 * 1024

	addressEndpoint = "/v2/local/search/address.json"
	keywordEndpoint = "/v2/local/search/keyword.json"
)

// KakaoAdapter implements AddressSearcher against the Kakao Local REST API
type KakaoAdapter struct {
	config     *KakaoConfig
	httpClient *http.Client
}

// NewKakaoAdapter creates a new Kakao Local adapter with the given configuration
func NewKakaoAdapter(config *KakaoConfig) (*KakaoAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &KakaoAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}, nil
}

// kakaoAddressDoc is the subset of the Kakao document payload we consume
type kakaoAddressDoc struct {
	AddressName string `json:"address_name"`
	RoadAddress struct {
		AddressName string `json:"address_name"`
	} `json:"road_address"`
	X string `json:"x"`
	Y string `json:"y"`
}

type kakaoKeywordDoc struct {
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	X               string `json:"x"`
	Y               string `json:"y"`
}

// SearchByAddress looks up candidates for a structured address query
func (a *KakaoAdapter) SearchByAddress(ctx context.Context, query string) ([]integration.AddressResult, error) {
	var payload struct {
		Documents []kakaoAddressDoc `json:"documents"`
	}
	if err := a.get(ctx, addressEndpoint, query, &payload); err != nil {
		return nil, err
	}

	results := make([]integration.AddressResult, 0, len(payload.Documents))
	for _, doc := range payload.Documents {
		results = append(results, integration.AddressResult{
			Address:     doc.AddressName,
			RoadAddress: doc.RoadAddress.AddressName,
			Longitude:   doc.X,
			Latitude:    doc.Y,
		})
	}
	return results, nil
}

// SearchByKeyword looks up candidates for a free-form place keyword
func (a *KakaoAdapter) SearchByKeyword(ctx context.Context, query string) ([]integration.AddressResult, error) {
	var payload struct {
		Documents []kakaoKeywordDoc `json:"documents"`
	}
	if err := a.get(ctx, keywordEndpoint, query, &payload); err != nil {
		return nil, err
	}

	results := make([]integration.AddressResult, 0, len(payload.Documents))
	for _, doc := range payload.Documents {
		results = append(results, integration.AddressResult{
			Address:     doc.AddressName,
			RoadAddress: doc.RoadAddressName,
			Longitude:   doc.X,
			Latitude:    doc.Y,
		})
	}
	return results, nil
}

func (a *KakaoAdapter) get(ctx context.Context, endpoint, query string, out any) error {
	u := fmt.Sprintf("%s%s?query=%s", a.config.BaseURL, endpoint, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return integration.NewSearchFailedError(fmt.Sprintf("build request: %v", err))
	}
	req.Header.Set("Authorization", "KakaoAK "+a.config.APIKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return integration.NewSearchFailedError(fmt.Sprintf("request failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKakaoResponseSize))
	if err != nil {
		return integration.NewSearchFailedError(fmt.Sprintf("read response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return integration.NewSearchFailedError(fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return integration.NewSearchFailedError(fmt.Sprintf("decode response: %v", err))
	}
	return nil
}

var _ integration.AddressSearcher = (*KakaoAdapter)(nil)
