package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	AppDir           = "gcodeview"
	ConfigFile       = "config.yaml"
	DefaultExportExt = ".txt"
	exportSuffix     = "_settings"
	defaultFilePerms = 0644
	defaultDirPerms  = 0755
)

// GcodeFile describes a candidate input file
type GcodeFile struct {
	Path string
	Name string
	Size int64
}

// ListGcodeFiles returns files in dir whose extension is one of exts,
// sorted by name
func ListGcodeFiles(dir string, exts []string) ([]GcodeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []GcodeFile{}, nil
		}
		return nil, fmt.Errorf("failed to list G-code files in %s: %w", dir, err)
	}

	var result []GcodeFile
	for _, entry := range entries {
		if entry.IsDir() || !HasExtension(entry.Name(), exts) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		result = append(result, GcodeFile{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
			Size: info.Size(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// HasExtension reports whether name ends with one of exts, ignoring case
func HasExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// OpenGcode opens path for reading and returns its size. The caller closes the file.
func OpenGcode(path string) (*os.File, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	if info.IsDir() {
		f.Close()
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	return f, info.Size(), nil
}

// DefaultExportPath builds "<exportDir>/<source base>_settings.txt", or
// "<exportDir>/<fallback>" when no source is known
func DefaultExportPath(source, exportDir, fallback string) string {
	if exportDir == "" {
		exportDir = "."
	}
	if source == "" {
		return filepath.Join(exportDir, fallback)
	}
	base := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	return filepath.Join(exportDir, base+exportSuffix+DefaultExportExt)
}

// WriteExport writes content to path, adding the .txt extension when the
// path has none. It returns the path actually written.
func WriteExport(path string, content string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("failed to write export: empty path")
	}
	if filepath.Ext(path) == "" {
		path += DefaultExportExt
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, defaultDirPerms); err != nil {
			return "", fmt.Errorf("failed to create directory for export: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), defaultFilePerms); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return path, nil
}
