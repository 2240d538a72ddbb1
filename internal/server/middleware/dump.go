package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

// maxDumpBodyBytes 超过此大小的请求体不记录
const maxDumpBodyBytes int64 = 1 << 20

// DumpBody 在 debug 级别记录请求路径与原始请求体，读取后还原请求体供后续处理
// 任何读取失败都只跳过记录，不影响请求
func DumpBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if zerolog.GlobalLevel() > zerolog.DebugLevel || !shouldDump(c.Request) {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDumpBodyBytes+1))
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))

		event := log.Ctx(c.Request.Context()).Debug().Str("path", c.Request.URL.Path)
		if int64(len(body)) > maxDumpBodyBytes {
			event.Int64("content_length", c.Request.ContentLength).Msg("request body too large to dump")
		} else {
			if m := gjson.GetBytes(body, "model"); m.Exists() {
				event = event.Str("model", m.String())
			}
			event.Bytes("body", body).Msg("request body")
		}

		c.Next()
	}
}

func shouldDump(req *http.Request) bool {
	if req == nil || req.Body == nil || req.Body == http.NoBody {
		return false
	}
	return req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch
}
