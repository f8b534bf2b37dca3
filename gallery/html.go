package gallery

import (
	"embed"
	"fmt"
	"html/template"
	"os"
)

//go:embed template.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "template.html"))

// pageData is what the template renders.
type pageData struct {
	Images     []Image
	Categories []Category
}

// BuildHTML scans the images directory and writes the gallery page to
// outputFile. It returns the number of images included.
func BuildHTML(imagesDir, outputFile string) (int, error) {
	images, err := Scan(imagesDir)
	if err != nil {
		return 0, err
	}
	if len(images) == 0 {
		return 0, fmt.Errorf("gallery: no images found in %s", imagesDir)
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return 0, fmt.Errorf("gallery: create output file: %w", err)
	}
	defer f.Close()

	data := pageData{Images: images, Categories: Categories(images)}
	if err := pageTemplate.Execute(f, data); err != nil {
		return 0, fmt.Errorf("gallery: render page: %w", err)
	}
	return len(images), nil
}
