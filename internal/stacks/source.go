// Package stacks reads catalog documents (stacks_by_framework_<locale>.md)
// from a directory.
package stacks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPattern names the catalog file for a locale.
const DefaultPattern = "stacks_by_framework_%s.md"

// DefaultLocale is used for any locale without a catalog of its own.
const DefaultLocale = "en"

// ErrCatalogNotFound is returned when the catalog file for a locale is missing.
var ErrCatalogNotFound = errors.New("catalog not found")

var locales = []string{"en", "ru", "ua"}

// Locales returns the locales that ship a catalog.
func Locales() []string {
	return append([]string(nil), locales...)
}

// SanitizeLocale maps a requested locale to a supported one. Unknown or
// empty values fall back to DefaultLocale.
func SanitizeLocale(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	for _, known := range locales {
		if l == known {
			return l
		}
	}
	return DefaultLocale
}

// FileSource serves catalog text from files in Dir.
type FileSource struct {
	Dir     string
	Pattern string // fmt pattern with one %s for the locale; DefaultPattern when empty
}

// FileName returns the catalog file name for locale after sanitizing it.
func (s FileSource) FileName(locale string) string {
	pattern := s.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return fmt.Sprintf(pattern, SanitizeLocale(locale))
}

// Path returns the full path of the catalog file for locale.
func (s FileSource) Path(locale string) string {
	return filepath.Join(s.Dir, s.FileName(locale))
}

// Catalog reads the catalog document for locale.
func (s FileSource) Catalog(ctx context.Context, locale string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := s.Path(locale)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrCatalogNotFound, s.FileName(locale))
		}
		return "", fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return string(data), nil
}

// Available lists the supported locales that have a catalog file in Dir.
func (s FileSource) Available() []string {
	var out []string
	for _, l := range locales {
		if _, err := os.Stat(s.Path(l)); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// localeForFile returns the locale a file name belongs to under pattern, or
// "" when it is not a catalog file.
func localeForFile(pattern, name string) string {
	if pattern == "" {
		pattern = DefaultPattern
	}
	for _, l := range locales {
		if name == fmt.Sprintf(pattern, l) {
			return l
		}
	}
	return ""
}
