//go:build !mobile

package utils

import (
	"os"
	"strconv"
)

// mobileEmulateEnv 桌面调试时模拟移动端（跳过全屏和 F11）
const mobileEmulateEnv = "BUTTERFLY_MOBILE_EMULATE"

// IsMobile 桌面构建默认返回 false，除非设置了 BUTTERFLY_MOBILE_EMULATE
func IsMobile() bool {
	emulate, err := strconv.ParseBool(os.Getenv(mobileEmulateEnv))
	return err == nil && emulate
}
