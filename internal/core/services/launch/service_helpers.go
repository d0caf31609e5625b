package launch

import (
	"path/filepath"
	"strings"
)

// longPathMarker lifts the legacy path length limit on systems whose
// canonical paths are otherwise capped.
const longPathMarker = `\\?\`

// rewriteExtension replaces path's extension with ext, so the shim
// binary's name points at its companion script.
func rewriteExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func prefixLongPath(path string) string {
	if strings.HasPrefix(path, longPathMarker) {
		return path
	}
	return longPathMarker + path
}
