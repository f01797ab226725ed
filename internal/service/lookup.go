package service

import (
	"context"
	"errors"

	"vt-check-go/config"
	"vt-check-go/internal/fetcher"
	"vt-check-go/internal/model"
)

// LookupService URL安全查询服务
type LookupService struct {
	fetcher fetcher.ReportFetcher
}

// NewLookupService 创建查询服务
func NewLookupService(f fetcher.ReportFetcher) *LookupService {
	return &LookupService{fetcher: f}
}

// NewLookupServiceFromConfig 使用配置中的VirusTotal key创建查询服务
func NewLookupServiceFromConfig(cfg *config.Config) *LookupService {
	return NewLookupService(fetcher.NewVirusTotalClient(cfg.VirusTotalKey, cfg.VirusTotalBaseURL))
}

// CheckURL 查询URL的VirusTotal报告并转换为简化判定
func (s *LookupService) CheckURL(ctx context.Context, rawURL string) (*model.LookupResponse, error) {
	if rawURL == "" {
		return nil, ErrURLRequired
	}

	attrs, err := s.fetcher.FetchURLReport(ctx, rawURL)
	if err != nil {
		upstreamErr := &UpstreamError{Err: err}
		var statusErr *fetcher.StatusError
		if errors.As(err, &statusErr) {
			upstreamErr.StatusCode = statusErr.StatusCode
		}
		return nil, upstreamErr
	}

	return BuildLookupResponse(attrs), nil
}

// BuildLookupResponse 从 data.attributes 提取判定字段
func BuildLookupResponse(attrs *fetcher.URLAttributes) *model.LookupResponse {
	stats := model.AnalysisStats{
		Malicious:  attrs.LastAnalysisStats["malicious"],
		Harmless:   attrs.LastAnalysisStats["harmless"],
		Suspicious: attrs.LastAnalysisStats["suspicious"],
	}
	for _, count := range attrs.LastAnalysisStats {
		stats.Total += count
	}

	engines := make(map[string]string, len(attrs.LastAnalysisResults))
	for engine, verdict := range attrs.LastAnalysisResults {
		if verdict.Result == nil {
			engines[engine] = model.VerdictClean
			continue
		}
		engines[engine] = *verdict.Result
	}

	status := model.StatusSafe
	if stats.Malicious > 0 {
		status = model.StatusUnsafe
	}

	return &model.LookupResponse{
		Status:         status,
		AnalysisStats:  stats,
		CommunityScore: attrs.TotalVotes["malicious"] - attrs.TotalVotes["harmless"],
		EngineResults:  engines,
	}
}
