//go:build !mobile

// 桌面端构建时 mobile 包只剩这个文件，
// 保证 go build ./... 与 go vet ./... 不会因为包内没有可编译文件而失败。
package mobile

// Available 报告当前构建是否包含 ebitenmobile 绑定
func Available() bool { return false }
