//go:build quarkgl_debug

package quarkgl

func debugAssert(ok bool, msg string) {
	if !ok {
		panic("quarkgl: " + msg)
	}
}
