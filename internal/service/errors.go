package service

import (
	"errors"
	"fmt"
)

// ErrURLRequired 请求缺少url或url为空
var ErrURLRequired = errors.New("url is required")

// UpstreamError VirusTotal调用失败
// 所有非200状态统一归为此错误，StatusCode 只用于日志，不返回给调用方
type UpstreamError struct {
	StatusCode int // 0 表示网络错误或响应无法解析
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream lookup failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream lookup failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
