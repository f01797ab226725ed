package fetcher

import "context"

// ReportFetcher URL信誉报告获取器 (VirusTotal)
type ReportFetcher interface {
	FetchURLReport(ctx context.Context, rawURL string) (*URLAttributes, error)
}

// URLAttributes VirusTotal报告中的 data.attributes
type URLAttributes struct {
	// 各分类引擎数量，除 malicious/harmless/suspicious 外还可能有 undetected、timeout 等
	LastAnalysisStats   map[string]int           `json:"last_analysis_stats"`
	TotalVotes          map[string]int           `json:"total_votes"`
	LastAnalysisResults map[string]EngineVerdict `json:"last_analysis_results"`
}

// EngineVerdict 单个引擎的检测结果
type EngineVerdict struct {
	Category   string  `json:"category"`
	EngineName string  `json:"engine_name"`
	Method     string  `json:"method"`
	Result     *string `json:"result"` // 可能为null
}
