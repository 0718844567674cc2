package middleware

import (
	stderrors "errors"
	"net"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/tinytickets/tinytickets/internal/shared/constants"
	"github.com/tinytickets/tinytickets/internal/shared/errors"
	"github.com/tinytickets/tinytickets/internal/shared/logger"
	"github.com/tinytickets/tinytickets/internal/shared/utils"
)

// Recovery turns a handler panic into the static internal_error envelope.
// A client that hung up mid-response gets nothing written back.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		if isClientGone(recovered) {
			log.Warnw("client went away", "method", c.Request.Method, "route", route, "error", recovered)
			c.Abort()
			return
		}

		dump, _ := httputil.DumpRequest(c.Request, false)
		log.Errorw("panic recovered",
			"method", c.Request.Method,
			"route", route,
			"request", redactTokenHeader(dump),
			"error", recovered,
			"stack", string(debug.Stack()),
		)

		utils.AbortWithError(c, errors.NewInternalError(constants.ErrMsgInternalServerError))
	})
}

func redactTokenHeader(dump []byte) []string {
	lines := strings.Split(string(dump), "\r\n")
	for i, line := range lines {
		if name, _, ok := strings.Cut(line, ":"); ok && strings.EqualFold(strings.TrimSpace(name), constants.HeaderXToken) {
			lines[i] = name + ": " + logger.Redacted
		}
	}
	return lines
}

func isClientGone(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	if stderrors.Is(err, syscall.EPIPE) || stderrors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	if !stderrors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if !stderrors.As(opErr, &sysErr) {
		return false
	}
	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
