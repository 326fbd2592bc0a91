//go:build windows

package fs

// IsHidden checks if a file is hidden on this platform (Windows). Dot-files
// count as hidden as well, matching what users of cross-platform tools expect.
func IsHidden(fullPath string, name string) bool {
	if hasHiddenPrefix(name) {
		return true
	}
	attrs, err := getFileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}
