package errs

import (
	"errors"
	"fmt"
)

// 业务错误码，跟具体传输层无关，由 handler 统一翻译成 HTTP 状态码
const (
	ECONFLICT = "conflict"  // 唯一约束冲突（用户名、话题名、重复点赞/关注）
	EINVALID  = "invalid"   // 参数非法（ID 解析失败、k <= 0、内容超长）
	ENOTFOUND = "not_found" // 写入时引用的实体不存在
	EINTERNAL = "internal"  // 其他内部错误
)

// Error 携带机器可读 Code 和人类可读 Message 的业务错误
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("weave error: code=%s message=%s", e.Code, e.Message)
}

// Errorf 构造业务错误
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode 提取错误码，非业务错误一律归为 EINTERNAL
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage 提取给调用方看的错误信息
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	}
	if errors.As(err, &e) {
		return e.Message
	}
	return "内部错误"
}
