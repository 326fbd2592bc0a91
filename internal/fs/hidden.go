package fs

// hasHiddenPrefix applies the dot-file naming convention.
func hasHiddenPrefix(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
