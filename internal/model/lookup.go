package model

// 判定结果
const (
	StatusSafe   = "safe"
	StatusUnsafe = "unsafe"
)

// 上游引擎结果为null时的默认判定
const VerdictClean = "clean"

// LookupRequest POST /check 请求体
type LookupRequest struct {
	URL string `json:"url"`
}

// AnalysisStats 引擎统计
type AnalysisStats struct {
	Malicious  int `json:"malicious"`
	Harmless   int `json:"harmless"`
	Suspicious int `json:"suspicious"`
	Total      int `json:"total"` // last_analysis_stats 所有分类之和
}

// LookupResponse 简化后的安全判定
type LookupResponse struct {
	Status string `json:"status"`
	AnalysisStats
	CommunityScore int               `json:"community_score"`
	EngineResults  map[string]string `json:"engine_results"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error string `json:"error"`
}
