// Package gallery builds browsable views of a directory of generated
// artworks: an HTML gallery page and a PDF contact sheet.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Category groups images by their filename prefix.
type Category string

const (
	CategoryComprehensive     Category = "comprehensive"
	CategoryInterdisciplinary Category = "interdisciplinary"
	CategoryLegacy            Category = "legacy"
	CategoryOther             Category = "other"
)

// Image is one gallery entry.
type Image struct {
	// Path is the image location relative to the gallery output.
	Path string

	// Name is the humanized display name.
	Name string

	// Category is derived from the filename prefix.
	Category Category
}

// imageExtensions lists the file types the scanner accepts.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Scan walks the images directory and returns its gallery entries in
// filename order.
func Scan(imagesDir string) ([]Image, error) {
	entries, err := os.ReadDir(imagesDir)
	if err != nil {
		return nil, fmt.Errorf("gallery: read images dir: %w", err)
	}

	var images []Image
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !imageExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		images = append(images, Image{
			Path:     filepath.Join(filepath.Base(imagesDir), name),
			Name:     displayName(name),
			Category: categorize(name),
		})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].Path < images[j].Path })
	return images, nil
}

// categorize maps a filename to its gallery category.
// This is a pure function with no side effects.
func categorize(filename string) Category {
	switch {
	case strings.HasPrefix(filename, "comprehensive_"):
		return CategoryComprehensive
	case strings.HasPrefix(filename, "interdisciplinary_"),
		strings.HasPrefix(filename, "mandelbrot_"),
		strings.HasPrefix(filename, "julia_"):
		return CategoryInterdisciplinary
	case strings.HasPrefix(filename, "magnet_"), strings.HasPrefix(filename, "avantguard_"):
		return CategoryLegacy
	default:
		return CategoryOther
	}
}

// displayName turns a filename into a human-readable title:
// "comprehensive_pop_art_01.jpg" becomes "Comprehensive Pop Art 01".
// This is a pure function with no side effects.
func displayName(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	words := strings.Split(stem, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Categories returns the distinct categories present, in display order.
func Categories(images []Image) []Category {
	order := []Category{CategoryComprehensive, CategoryInterdisciplinary, CategoryLegacy, CategoryOther}
	present := map[Category]bool{}
	for _, img := range images {
		present[img.Category] = true
	}

	var out []Category
	for _, c := range order {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
