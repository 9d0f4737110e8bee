package sitemark

import (
	"io"
	"log"
	"os"
)

// Logger 全局日志记录器
var Logger = log.New(os.Stderr, "[sitemark] ", log.LstdFlags)

// SetLogger 设置自定义日志记录器；传入 nil 时丢弃所有日志
func SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	Logger = logger
}
