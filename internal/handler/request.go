package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"vt-check-go/internal/model"
	"vt-check-go/internal/service"
)

// maxRequestBody 请求体上限
const maxRequestBody = 1 << 20

// maxURLLength url长度上限（字节），超出按缺失处理，不调用上游
const maxURLLength = 8192

// decodeLookupRequest 解析 {"url": "..."}
// 非JSON对象、尾部有多余数据、url缺失、为null、不是字符串或超长都按 ErrURLRequired 处理
func decodeLookupRequest(w http.ResponseWriter, r *http.Request) (model.LookupRequest, error) {
	var req model.LookupRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	dec := json.NewDecoder(r.Body)
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return req, service.ErrURLRequired
	}
	if _, err := dec.Token(); err != io.EOF {
		return req, service.ErrURLRequired
	}

	raw, ok := fields["url"]
	if !ok {
		return req, service.ErrURLRequired
	}
	var url *string
	if err := json.Unmarshal(raw, &url); err != nil || url == nil || *url == "" || len(*url) > maxURLLength {
		return req, service.ErrURLRequired
	}

	req.URL = *url
	return req, nil
}
