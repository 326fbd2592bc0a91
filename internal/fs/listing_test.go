package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirEntry struct {
	name    string
	isDir   bool
	info    os.FileInfo
	infoErr error
}

func (d fakeDirEntry) Name() string { return d.name }
func (d fakeDirEntry) IsDir() bool  { return d.isDir }
func (d fakeDirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d fakeDirEntry) Info() (os.FileInfo, error) { return d.info, d.infoErr }

type fakeFileInfo struct {
	name    string
	size    int64
	mode    os.FileMode
	modTime time.Time
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() os.FileMode  { return f.mode }
func (f fakeFileInfo) ModTime() time.Time { return f.modTime }
func (f fakeFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f fakeFileInfo) Sys() any           { return nil }

type fakeProvider struct {
	dirs    map[string][]os.DirEntry
	stats   map[string]os.FileInfo
	readErr error
}

func (p fakeProvider) ReadDir(path string) ([]os.DirEntry, error) {
	if p.readErr != nil {
		return nil, p.readErr
	}
	entries, ok := p.dirs[path]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return entries, nil
}

func (p fakeProvider) Stat(path string) (os.FileInfo, error) {
	if info, ok := p.stats[path]; ok {
		return info, nil
	}
	return nil, iofs.ErrNotExist
}

func file(name string, size int64) fakeDirEntry {
	return fakeDirEntry{name: name, info: fakeFileInfo{name: name, size: size, modTime: time.Unix(1700000000, 0)}}
}

func dir(name string) fakeDirEntry {
	return fakeDirEntry{name: name, isDir: true, info: fakeFileInfo{name: name, mode: os.ModeDir | 0o755, size: 4096}}
}

func names(l Listing) []string {
	out := make([]string, len(l))
	for i, e := range l {
		out[i] = e.Name
	}
	return out
}

func TestLoadSortsDirectoriesFirstCaseInsensitive(t *testing.T) {
	root := filepath.FromSlash("/data")
	p := fakeProvider{dirs: map[string][]os.DirEntry{
		root: {file("zeta.txt", 1), dir("beta"), file("Alpha.md", 2), dir("Archive"), file("alpha.go", 3)},
	}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"..", "Archive", "beta", "alpha.go", "Alpha.md", "zeta.txt"}, names(listing))
	assert.True(t, listing[0].IsParent)
	assert.Equal(t, filepath.Dir(root), listing[0].FullPath)
}

func TestLoadFiltersHiddenEntries(t *testing.T) {
	root := filepath.FromSlash("/data")
	p := fakeProvider{dirs: map[string][]os.DirEntry{
		root: {file(".env", 10), file("a.txt", 20), dir(".git")},
	}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", "a.txt"}, names(listing))

	listing, err = Load(p, root, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"..", ".git", ".env", "a.txt"}, names(listing))
}

func TestLoadNeverReturnsHiddenEntriesWhenHidden(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{".a", ".B", "c", "D", ".hidden.txt", "visible.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".cache"), 0o755))

	listing, err := Load(OSProvider{}, tmpDir, false)
	require.NoError(t, err)

	for _, e := range listing {
		if e.IsParent {
			continue
		}
		assert.False(t, strings.HasPrefix(e.Name, "."), "unexpected hidden entry %q", e.Name)
	}
	assert.True(t, listing[0].IsParent, "parent entry should always be shown")
}

func TestLoadPartitionsAndSortsRealDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.txt", "A.txt", "c.TXT"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0o644))
	}
	for _, name := range []string{"zdir", "Adir", "mdir"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, name), 0o755))
	}

	listing, err := Load(OSProvider{}, tmpDir, true)
	require.NoError(t, err)

	seenFile := false
	for i, e := range listing {
		if !e.IsDir {
			seenFile = true
		} else {
			assert.False(t, seenFile, "directory %q after a file", e.Name)
		}
		if i > 0 {
			assert.True(t, Less(listing[i-1], e), "%q should sort before %q", listing[i-1].Name, e.Name)
		}
	}
	assert.Equal(t, []string{"..", "Adir", "mdir", "zdir", "A.txt", "b.txt", "c.TXT"}, names(listing))
}

func TestLoadKeepsEntriesWithUnreadableMetadata(t *testing.T) {
	root := filepath.FromSlash("/data")
	broken := fakeDirEntry{name: "vanished.log", infoErr: iofs.ErrNotExist}
	p := fakeProvider{dirs: map[string][]os.DirEntry{
		root: {broken, file("ok.txt", 12800)},
	}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	require.Len(t, listing, 3)

	ok := listing[1]
	assert.Equal(t, "ok.txt", ok.Name)
	assert.True(t, ok.HasMetadata())
	assert.Equal(t, uint64(12800), ok.Size)

	missing := listing[2]
	assert.Equal(t, "vanished.log", missing.Name)
	assert.False(t, missing.HasMetadata())
	assert.ErrorIs(t, missing.MetaErr, ErrMetadataUnavailable)
	assert.Zero(t, missing.Size)
	assert.True(t, missing.Modified.IsZero())
}

func TestLoadDirectorySizeIsZero(t *testing.T) {
	root := filepath.FromSlash("/data")
	p := fakeProvider{dirs: map[string][]os.DirEntry{root: {dir("src")}}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Zero(t, listing[1].Size)
	assert.Equal(t, "src/", listing[1].DisplayName())
	assert.Equal(t, "../", listing[0].DisplayName())
}

func TestLoadFollowsSymlinkToDirectory(t *testing.T) {
	root := filepath.FromSlash("/data")
	link := fakeDirEntry{name: "current", info: fakeFileInfo{name: "current", mode: os.ModeSymlink | 0o777}}
	p := fakeProvider{
		dirs:  map[string][]os.DirEntry{root: {link, file("a.txt", 1)}},
		stats: map[string]os.FileInfo{filepath.Join(root, "current"): fakeFileInfo{name: "current", mode: os.ModeDir | 0o755}},
	}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	require.Len(t, listing, 3)
	assert.Equal(t, "current", listing[1].Name)
	assert.True(t, listing[1].IsDir)
	assert.True(t, listing[1].IsSymlink)
}

func TestLoadAtRootHasNoParentEntry(t *testing.T) {
	root := string(filepath.Separator)
	p := fakeProvider{dirs: map[string][]os.DirEntry{root: {dir("usr"), file("swapfile", 1)}}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	assert.False(t, listing[0].IsParent)
	assert.Equal(t, []string{"usr", "swapfile"}, names(listing))
}

func TestLoadPermissionDeniedReturnsAccessError(t *testing.T) {
	p := fakeProvider{readErr: iofs.ErrPermission}

	listing, err := Load(p, filepath.FromSlash("/secret"), false)
	require.Error(t, err)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, ErrAccess)
	assert.ErrorIs(t, err, iofs.ErrPermission)

	var accessErr *AccessError
	require.True(t, errors.As(err, &accessErr))
	assert.Equal(t, filepath.FromSlash("/secret"), accessErr.Path)
	assert.Contains(t, err.Error(), "secret")
}

func TestLoadMissingAndNonDirectoryPaths(t *testing.T) {
	tmpDir := t.TempDir()
	regular := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(regular, []byte("x"), 0o644))

	_, err := Load(OSProvider{}, filepath.Join(tmpDir, "missing"), false)
	assert.ErrorIs(t, err, ErrAccess)

	_, err = Load(OSProvider{}, regular, false)
	assert.ErrorIs(t, err, ErrAccess)
}

func TestLoadNormalizesNamesToNFC(t *testing.T) {
	root := filepath.FromSlash("/data")
	decomposed := "cafe\u0301.txt"
	p := fakeProvider{dirs: map[string][]os.DirEntry{root: {file(decomposed, 1)}}}

	listing, err := Load(p, root, false)
	require.NoError(t, err)
	require.Len(t, listing, 2)
	assert.Equal(t, "caf\u00e9.txt", listing[1].Name)
	assert.Equal(t, filepath.Join(root, decomposed), listing[1].FullPath)
}
