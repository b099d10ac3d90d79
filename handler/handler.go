package handler

import (
	"net/http"
	"strconv"

	"Weave/pkg/response"
)

// parseID 字符串 ID 在 API 边界统一解析一次，后面全程用 int64
func parseID(raw string, field string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "无效的 "+field)
	}
	return id, nil
}

// parseK top-k 查询的 k，必须是正整数
func parseK(raw string) (int, error) {
	k, err := strconv.Atoi(raw)
	if err != nil || k <= 0 {
		return 0, response.NewError(http.StatusBadRequest, "k 必须为正整数")
	}
	return k, nil
}

// parseLimit 可选的 limit，缺省 0 表示不限制
func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
