//go:build !quarkgl_debug

package quarkgl

func debugAssert(bool, string) {}
