package gallery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Contact sheet layout on an A4 portrait page, in millimeters.
const (
	sheetMargin  = 12.0
	sheetColumns = 3
	cellGap      = 6.0
	captionSpace = 8.0
)

// BuildContactSheet scans the images directory and lays the artworks
// out on a paginated PDF grid. Only JPEG and PNG entries are included,
// the formats the PDF encoder understands. Returns the number of images
// placed.
func BuildContactSheet(imagesDir, outputFile string) (int, error) {
	images, err := Scan(imagesDir)
	if err != nil {
		return 0, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Malevich Contact Sheet", false)
	pdf.SetFont("Helvetica", "", 8)

	pageW, pageH := pdf.GetPageSize()
	usableW := pageW - 2*sheetMargin
	cellW := (usableW - cellGap*(sheetColumns-1)) / sheetColumns
	cellH := cellW + captionSpace

	col, placed := 0, 0
	y := pageH // Forces a page break before the first image.

	for _, img := range images {
		ext := strings.ToLower(filepath.Ext(img.Path))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			continue
		}

		if col == 0 && y+cellH > pageH-sheetMargin {
			pdf.AddPage()
			y = sheetMargin
		}
		x := sheetMargin + float64(col)*(cellW+cellGap)

		src := filepath.Join(filepath.Dir(imagesDir), img.Path)
		opts := gofpdf.ImageOptions{ImageType: pdfImageType(ext), ReadDpi: true}
		pdf.ImageOptions(src, x, y, cellW, cellW, false, opts, 0, "")
		pdf.SetXY(x, y+cellW+1)
		pdf.CellFormat(cellW, 4, img.Name, "", 0, "C", false, 0, "")

		placed++
		col++
		if col == sheetColumns {
			col = 0
			y += cellH + cellGap
		}
	}

	if placed == 0 {
		return 0, fmt.Errorf("gallery: no printable images found in %s", imagesDir)
	}
	if err := pdf.OutputFileAndClose(outputFile); err != nil {
		return 0, fmt.Errorf("gallery: write contact sheet: %w", err)
	}
	return placed, nil
}

// pdfImageType maps a file extension to the encoder's type name.
func pdfImageType(ext string) string {
	if ext == ".png" {
		return "PNG"
	}
	return "JPG"
}
