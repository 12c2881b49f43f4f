package utils

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// MaxDecompressedSize caps the output of Decompress, well above the
// largest cartridge (8 MiB).
const MaxDecompressedSize = 16 << 20

var (
	// ErrEmptyArchive is returned when an archive holds no files.
	ErrEmptyArchive = errors.New("archive contains no files")
	// ErrTooLarge is returned when the decompressed data exceeds
	// MaxDecompressedSize.
	ErrTooLarge = errors.New("decompressed data too large")
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the file extension ext. Unknown
// extensions (including .gb and .gbc) are returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		decoder = r
	case ".zst":
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		defer r.Close()
		decoder = r
	case ".xz":
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		decoder = r
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("zip: %w", ErrEmptyArchive)
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("7z: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("7z: %w", ErrEmptyArchive)
		}

		// read the first file in the archive
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("7z: %w", err)
		}
		defer rc.Close()
		decoder = rc
	default:
		return data, nil
	}

	b, err := io.ReadAll(io.LimitReader(decoder, MaxDecompressedSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxDecompressedSize {
		return nil, ErrTooLarge
	}
	return b, nil
}
