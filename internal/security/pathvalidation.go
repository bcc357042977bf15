// Package security confines user-supplied output paths to a base directory.
package security

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathEscape is returned when a path resolves outside its base directory.
var ErrPathEscape = errors.New("path escapes output directory")

// canonical resolves symlinks in p. If p does not exist yet, the nearest
// existing ancestor is resolved and the remainder re-joined, so a new file
// under a symlinked directory is still judged by where it will really land.
func canonical(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	for dir := filepath.Dir(p); ; dir = filepath.Dir(dir) {
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			rel, _ := filepath.Rel(dir, p)
			return filepath.Join(resolved, rel)
		}
		if filepath.Dir(dir) == dir {
			return p
		}
	}
}

// ValidatePathWithinDirectory returns an error wrapping ErrPathEscape when
// filePath, after cleaning and symlink resolution, is not inside baseDir.
func ValidatePathWithinDirectory(filePath, baseDir string) error {
	absPath, err := filepath.Abs(filepath.Clean(filePath))
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("failed to resolve output directory: %w", err)
	}

	rel, err := filepath.Rel(canonical(absBase), canonical(absPath))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPathEscape, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return fmt.Errorf("%w: %s is outside %s", ErrPathEscape, filePath, baseDir)
	}
	return nil
}

// OutputPath joins a sanitised file name onto baseDir and validates the
// result. Relative names are taken relative to baseDir.
func OutputPath(baseDir, name, ext string) (string, error) {
	file := SanitizeFilename(strings.TrimSuffix(filepath.Base(name), ext)) + ext
	dir := filepath.Dir(name)
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(baseDir, dir)
	}
	p := filepath.Join(dir, file)
	if err := ValidatePathWithinDirectory(p, baseDir); err != nil {
		return "", err
	}
	return p, nil
}

// SanitizeFilename replaces anything other than ASCII letters, digits, dot,
// underscore or dash with a single underscore and caps the length.
func SanitizeFilename(s string) string {
	const maxLen = 128
	var b strings.Builder
	lastUnderscore := false
	for _, r := range s {
		if b.Len() >= maxLen {
			break
		}
		switch {
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'),
			r == '.', r == '_', r == '-':
			b.WriteRune(r)
			lastUnderscore = r == '_'
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		return "unknown"
	}
	return out
}
