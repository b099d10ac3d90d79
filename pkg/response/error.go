package response

import (
	"errors"
	"net/http"

	"Weave/pkg/errs"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// FromErr 把 pkg/errs 的业务错误码翻译成 HTTP 状态码
func FromErr(err error) *BizError {
	switch errs.ErrorCode(err) {
	case errs.ENOTFOUND:
		return NewError(http.StatusNotFound, errs.ErrorMessage(err))
	case errs.ECONFLICT:
		return NewError(http.StatusConflict, errs.ErrorMessage(err))
	case errs.EINVALID:
		return NewError(http.StatusBadRequest, errs.ErrorMessage(err))
	default:
		return NewError(http.StatusInternalServerError, errs.ErrorMessage(err))
	}
}

// ErrorMiddleware 统一渲染 handler 经 context.Wrap 记录的错误，
// 兼做 panic 兜底
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.JSON(http.StatusInternalServerError, Response{
					Code: 500,
					Msg:  "系统异常",
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			var be *BizError
			if errors.As(err, &be) {
				Fail(c, be.Code, be.Msg)
			} else {
				Fail(c, 500, err.Error())
			}
			c.Abort()
		}
	}
}
