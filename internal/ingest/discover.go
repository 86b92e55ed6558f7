package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtension is the suffix of payroll data files.
const DefaultExtension = ".dat"

// DiscoverDatFiles lists the files in dir whose names end with ext, in
// directory order (lexical by name). Subdirectories are ignored even when
// their name matches. The match is case-sensitive.
func DiscoverDatFiles(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirNotFound, dir)
		}
		return nil, fmt.Errorf("reading input folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input folder %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", ErrNoInputFiles, ext, dir)
	}
	return files, nil
}
