package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveInput checks that arg names a readable regular file.
// When arg is a directory holding exactly one G-code file, that file is used.
// Otherwise the error lists the G-code files found next to the missing path.
func ResolveInput(arg string, exts []string) (string, error) {
	info, err := os.Stat(arg)
	if err == nil {
		if !info.IsDir() {
			return arg, nil
		}
		candidates, listErr := ListGcodeFiles(arg, exts)
		if listErr != nil {
			return "", listErr
		}
		switch len(candidates) {
		case 0:
			return "", fmt.Errorf("no G-code files found in %s", arg)
		case 1:
			return candidates[0].Path, nil
		default:
			return "", fmt.Errorf("%s contains %d G-code files, pick one: %s", arg, len(candidates), joinNames(candidates))
		}
	}

	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to access %s: %w", arg, err)
	}

	candidates, _ := ListGcodeFiles(filepath.Dir(arg), exts)
	if len(candidates) > 0 {
		return "", fmt.Errorf("file %s not found (available: %s)", arg, joinNames(candidates))
	}
	return "", fmt.Errorf("file %s not found", arg)
}

func joinNames(files []GcodeFile) string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}
