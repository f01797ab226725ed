package fetcher

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// VirusTotalClient VirusTotal v3 API客户端
type VirusTotalClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewVirusTotalClient 创建VirusTotal客户端
// 不设置超时，沿用默认HTTP客户端行为，由请求context控制取消
func NewVirusTotalClient(apiKey, baseURL string) *VirusTotalClient {
	return &VirusTotalClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// StatusError 上游返回非200
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("virustotal returned status %d: %s", e.StatusCode, e.Body)
}

var errMissingAttributes = errors.New("virustotal response missing data.attributes.last_analysis_stats")

type urlReportResponse struct {
	Data *struct {
		ID         string         `json:"id"`
		Type       string         `json:"type"`
		Attributes *URLAttributes `json:"attributes"`
	} `json:"data"`
}

// URLIdentifier 计算URL在VirusTotal中的资源ID
// URL-safe base64，去掉末尾的 '=' 填充
func URLIdentifier(rawURL string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(rawURL))
}

// FetchURLReport 获取URL的最近一次分析报告
// GET /api/v3/urls/{id}
func (c *VirusTotalClient) FetchURLReport(ctx context.Context, rawURL string) (*URLAttributes, error) {
	reqURL := fmt.Sprintf("%s/api/v3/urls/%s", c.baseURL, URLIdentifier(rawURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result urlReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Data == nil || result.Data.Attributes == nil || result.Data.Attributes.LastAnalysisStats == nil {
		return nil, errMissingAttributes
	}

	return result.Data.Attributes, nil
}
