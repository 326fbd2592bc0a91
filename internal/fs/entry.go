package fs

import (
	"os"
	"time"
)

// ParentName is the name of the synthetic entry that leads to the parent directory.
const ParentName = ".."

// Entry represents a single file or directory on disk.
type Entry struct {
	Name      string
	FullPath  string
	IsDir     bool
	IsSymlink bool
	IsParent  bool
	Size      uint64
	Modified  time.Time
	Mode      os.FileMode

	// MetaErr is non-nil when size and modification time could not be read.
	MetaErr error
}

// IsHidden reports whether the entry should be treated as hidden.
// The parent entry is never hidden.
func (e Entry) IsHidden() bool {
	if e.IsParent {
		return false
	}
	return IsHidden(e.FullPath, e.Name)
}

// HasMetadata reports whether Size and Modified carry real values.
func (e Entry) HasMetadata() bool {
	return e.MetaErr == nil
}

// DisplayName is the name as shown in listings: "../" for the parent entry
// and a trailing slash for directories.
func (e Entry) DisplayName() string {
	if e.IsParent {
		return ParentName + "/"
	}
	if e.IsDir {
		return e.Name + "/"
	}
	return e.Name
}

// Listing is an ordered snapshot of one directory.
type Listing []Entry
