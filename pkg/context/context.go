package context

import (
	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 记录到 gin 错误链，由 ErrorMiddleware 统一渲染
			_ = c.Error(err)
		}
	}
}
