//go:build !android

package utils

// EnsureStorageDir 桌面与 iOS 上 gdata 自己创建目录，这里什么都不做
func EnsureStorageDir() error { return nil }

// GetStoragePath 仅 Android 有意义，其余平台返回空串
func GetStoragePath() string { return "" }
