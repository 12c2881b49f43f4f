// Package saves manages save state files on disk. Each cartridge gets
// its own folder, named after its fingerprint, holding one file per
// save:
//
//	<root>/<fingerprint>/<timestamp>.state
package saves

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

const stateExt = ".state"

var rename = os.Rename

// ErrNoSaves is returned by Latest when a cartridge has no save files.
var ErrNoSaves = errors.New("saves: no save files")

// Folder is the root folder save files are kept in.
type Folder struct {
	Root string
}

// New returns a Folder rooted at root.
func New(root string) *Folder {
	return &Folder{Root: root}
}

func (f *Folder) cartFolder(fingerprint uint64) string {
	return filepath.Join(f.Root, fmt.Sprintf("%016x", fingerprint))
}

// Write stores b as a new save file for the cartridge with the given
// fingerprint, returning its path. The data is written to a temporary
// file first and renamed into place, so a crash never leaves a partial
// save behind.
func (f *Folder) Write(fingerprint uint64, b []byte) (string, error) {
	folder := f.cartFolder(fingerprint)
	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}

	// saves made within the same clock tick get consecutive timestamps
	ts := time.Now().UnixNano()
	path := filepath.Join(folder, strconv.FormatInt(ts, 10)+stateExt)
	for _, err := os.Stat(path); err == nil; _, err = os.Stat(path) {
		ts++
		path = filepath.Join(folder, strconv.FormatInt(ts, 10)+stateExt)
	}
	tmp, err := os.CreateTemp(folder, filepath.Base(path)+".*")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write to temporary save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	if err := rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return path, nil
}

// List returns the save files for the given fingerprint, newest first.
// A cartridge without saves yields an empty slice.
func (f *Folder) List(fingerprint uint64) ([]string, error) {
	entries, err := os.ReadDir(f.cartFolder(fingerprint))
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	} else if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSaveFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(f.cartFolder(fingerprint), e.Name()))
	}
	sort.Slice(paths, func(i, j int) bool {
		return parseTimestampFromFilename(paths[i]) > parseTimestampFromFilename(paths[j])
	})
	return paths, nil
}

// Latest returns the contents of the newest save file for the given
// fingerprint.
func (f *Folder) Latest(fingerprint uint64) ([]byte, string, error) {
	paths, err := f.List(fingerprint)
	if err != nil {
		return nil, "", err
	}
	if len(paths) == 0 {
		return nil, "", ErrNoSaves
	}
	b, err := utils.LoadFile(paths[0])
	return b, paths[0], err
}

// parseTimestampFromFilename parses the timestamp from the given filename.
// The filename is expected to be in the format of "<timestamp>.state".
func parseTimestampFromFilename(filename string) int64 {
	n, err := strconv.ParseInt(strings.TrimSuffix(filepath.Base(filename), stateExt), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func isSaveFile(filename string) bool {
	return strings.HasSuffix(filename, stateExt)
}
