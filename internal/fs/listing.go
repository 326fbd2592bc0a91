package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Load reads the immediate children of path and returns them as a sorted
// Listing. Entries whose metadata cannot be read are kept with MetaErr set.
// Only a failure to open the directory itself is reported, as *AccessError.
func Load(p Provider, path string, showHidden bool) (Listing, error) {
	if p == nil {
		p = OSProvider{}
	}
	dirPath := filepath.Clean(path)

	dirEntries, err := p.ReadDir(dirPath)
	if err != nil {
		return nil, &AccessError{Path: dirPath, Err: err}
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		fullPath := filepath.Join(dirPath, rawName)

		if ShouldHideFromListing(fullPath, rawName) {
			continue
		}

		entry := newEntry(p, de, fullPath)
		if !showHidden && entry.IsHidden() {
			continue
		}
		entries = append(entries, entry)
	}

	sortEntries(entries)

	listing := make(Listing, 0, len(entries)+1)
	if parent := filepath.Dir(dirPath); parent != dirPath {
		listing = append(listing, Entry{
			Name:     ParentName,
			FullPath: parent,
			IsDir:    true,
			IsParent: true,
		})
	}
	return append(listing, entries...), nil
}

func newEntry(p Provider, de os.DirEntry, fullPath string) Entry {
	entry := Entry{
		Name:     norm.NFC.String(de.Name()),
		FullPath: fullPath,
		IsDir:    de.IsDir(),
		Mode:     de.Type(),
	}

	info, err := de.Info()
	if err != nil {
		entry.MetaErr = fmt.Errorf("%w: %v", ErrMetadataUnavailable, err)
		return entry
	}

	entry.Mode = info.Mode()
	entry.IsSymlink = info.Mode()&os.ModeSymlink != 0
	entry.Modified = info.ModTime()

	// For symlinks, the target decides whether this is a directory and
	// which size is shown.
	if entry.IsSymlink {
		if target, err := p.Stat(fullPath); err == nil {
			info = target
			entry.IsDir = target.IsDir()
		}
	}

	if !entry.IsDir && info.Size() > 0 {
		entry.Size = uint64(info.Size())
	}
	return entry
}

// sortEntries orders directories before files, each group by case-folded
// name. The raw name breaks ties so the order is total.
func sortEntries(entries []Entry) {
	caser := cases.Fold()
	keys := make(map[string]string, len(entries))
	for _, e := range entries {
		keys[e.Name] = caser.String(e.Name)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		return lessFolded(a, b, keys[a.Name], keys[b.Name])
	})
}

// Less reports whether a sorts before b under the listing order. The parent
// entry sorts before everything.
func Less(a, b Entry) bool {
	caser := cases.Fold()
	return lessFolded(a, b, caser.String(a.Name), caser.String(b.Name))
}

func lessFolded(a, b Entry, foldedA, foldedB string) bool {
	if a.IsParent != b.IsParent {
		return a.IsParent
	}
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	if foldedA != foldedB {
		return foldedA < foldedB
	}
	return a.Name < b.Name
}
