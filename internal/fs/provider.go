package fs

import "os"

// Provider supplies directory listings and per-entry metadata.
type Provider interface {
	ReadDir(path string) ([]os.DirEntry, error)
	Stat(path string) (os.FileInfo, error)
}

var (
	osReadDir = os.ReadDir
	osStat    = os.Stat
)

// OSProvider reads the local filesystem.
type OSProvider struct{}

var _ Provider = OSProvider{}

func (OSProvider) ReadDir(path string) ([]os.DirEntry, error) {
	return osReadDir(path)
}

func (OSProvider) Stat(path string) (os.FileInfo, error) {
	return osStat(path)
}
