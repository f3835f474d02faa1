// Package adapter contains the infrastructure adapters of the bowlscore CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/bowlscore/internal/model"
)

// SheetStore locates and decodes score sheets. It hides direct `os` access
// so the workflow logic can be tested without touching the disk.
type SheetStore interface {
	// Find expands the provided roots into sheet files. A root may be a
	// file, a directory, or a directory followed by /... to descend into
	// sub-directories.
	Find(roots []m.Path) ([]m.Path, error)

	// Load reads and decodes the sheet at path.
	Load(path m.Path) (m.Sheet, error)
}

// ErrEmptySheet is returned when a sheet file declares no frame.
var ErrEmptySheet = errors.New("sheet has no frames")

var sheetExtensions = []string{".yaml", ".yml"}

// LocalSheetStore reads YAML sheets from the local file system.
type LocalSheetStore struct{}

// NewLocalSheetStore constructs a LocalSheetStore ready to be wired into the workflow.
func NewLocalSheetStore() *LocalSheetStore {
	return &LocalSheetStore{}
}

// Find collects sheet files for the provided roots, in walk order and without duplicates.
func (s *LocalSheetStore) Find(roots []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var paths []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		paths = append(paths, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := os.Stat(rootPath)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		// Files named explicitly are taken whatever their extension.
		if !info.IsDir() {
			add(rootPath)
			continue
		}

		err = filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if !recursive && path != rootPath {
					return filepath.SkipDir
				}

				return nil
			}

			if isSheetFile(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

// Load reads the YAML sheet at path.
func (s *LocalSheetStore) Load(path m.Path) (m.Sheet, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.Sheet{}, err
	}

	defer func() {
		_ = f.Close()
	}()

	sheet, err := DecodeSheet(f)
	if err != nil {
		return m.Sheet{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	sheet.Origin = path
	if sheet.Title == "" {
		sheet.Title = strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))
	}

	return sheet, nil
}

// DecodeSheet decodes a single YAML sheet. Unknown fields are rejected.
func DecodeSheet(r io.Reader) (m.Sheet, error) {
	var sheet m.Sheet

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return m.Sheet{}, ErrEmptySheet
		}

		return m.Sheet{}, err
	}

	if len(sheet.Frames) == 0 {
		return m.Sheet{}, ErrEmptySheet
	}

	return sheet, nil
}

func isSheetFile(path string) bool {
	return slices.Contains(sheetExtensions, strings.ToLower(filepath.Ext(path)))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if strings.HasSuffix(rootStr, "/...") {
		return strings.TrimSuffix(rootStr, "/..."), true
	}

	return rootStr, false
}
