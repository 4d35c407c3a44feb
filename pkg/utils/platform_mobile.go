//go:build mobile

package utils

// IsMobile 移动端构建恒为 true
func IsMobile() bool { return true }
