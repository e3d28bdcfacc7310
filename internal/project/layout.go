// Package project resolves a project root into the collection document and
// the managed image directories beneath it.
package project

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentstation/figurines/pkg/constants"
)

// Layout is the on-disk shape of a project.
type Layout struct {
	root string
}

// New returns the layout rooted at root. A leading ~ is expanded to the home
// directory and relative roots are made absolute.
func New(root string) Layout {
	root = expandPath(root)
	if root == "" {
		root = "."
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return Layout{root: filepath.Clean(root)}
}

// expandPath expands ~ to the user's home directory.
func expandPath(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return homeDir
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homeDir, p[2:])
	}
	return p
}

// Root returns the absolute project root.
func (l Layout) Root() string { return l.root }

// CollectionFile returns the absolute path of the collection document.
func (l Layout) CollectionFile() string {
	return filepath.Join(l.root, constants.DataDir, constants.CollectionFileName)
}

// DataDir returns the absolute path of the data directory.
func (l Layout) DataDir() string {
	return filepath.Join(l.root, constants.DataDir)
}

// FullDir returns the project-relative directory for full-size images.
func (l Layout) FullDir() string { return constants.FullImagesDir }

// ThumbDir returns the project-relative directory for thumbnails.
func (l Layout) ThumbDir() string { return constants.ThumbnailsDir }

// Ensure creates the data and image directories.
func (l Layout) Ensure() error {
	for _, dir := range []string{l.DataDir(), l.Abs(l.FullDir()), l.Abs(l.ThumbDir())} {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Abs resolves a stored project-relative path. Absolute paths are returned
// unchanged.
func (l Layout) Abs(rel string) string {
	if rel == "" {
		return ""
	}
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.root, p)
}

// Rel converts a path under the root into the forward-slash form stored in
// the collection document.
func (l Layout) Rel(p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(l.root, p)
	}
	rel, err := filepath.Rel(l.root, p)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("%s is outside the project root %s", p, l.root)
	}
	return path.Clean(rel), nil
}

// Contains reports whether p resolves to a location under the root.
func (l Layout) Contains(p string) bool {
	_, err := l.Rel(p)
	return err == nil
}
