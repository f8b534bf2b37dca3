// Package social prepares artworks for Instagram and posts them. It
// covers the image format pipeline, the authenticated API client, the
// encrypted session store, and the high-level poster.
package social

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Format names an Instagram media geometry.
type Format string

const (
	FormatSquare    Format = "square"
	FormatPortrait  Format = "portrait"
	FormatLandscape Format = "landscape"
	FormatStory     Format = "story"
)

// formatSizes holds the recommended pixel dimensions per format.
var formatSizes = map[Format][2]int{
	FormatSquare:    {1080, 1080},
	FormatPortrait:  {1080, 1350},
	FormatLandscape: {1080, 566},
	FormatStory:     {1080, 1920},
}

// preparedJPEGQuality matches the quality the generator saves with.
const preparedJPEGQuality = 95

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatSquare, nil
	}
	if _, ok := formatSizes[f]; !ok {
		return "", fmt.Errorf("social: unknown format %q", name)
	}
	return f, nil
}

// Size returns the pixel dimensions of the format.
func (f Format) Size() (width, height int) {
	s := formatSizes[f]
	return s[0], s[1]
}

// FormatNames lists the supported format names.
func FormatNames() []string {
	return []string{
		string(FormatSquare),
		string(FormatPortrait),
		string(FormatLandscape),
		string(FormatStory),
	}
}

// PrepareImage resizes an artwork to the target format, keeping the
// aspect ratio and centering it on a white canvas, and writes the
// result next to the source as <name>_instagram_<format>.jpg.
func PrepareImage(imagePath string, format Format) (string, error) {
	targetW, targetH := format.Size()
	if targetW == 0 {
		return "", fmt.Errorf("social: unknown format %q", format)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("social: open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("social: decode image: %w", err)
	}

	bounds := src.Bounds()
	scaledW, scaledH := fitWithin(bounds.Dx(), bounds.Dy(), targetW, targetH)

	out := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	offsetX := (targetW - scaledW) / 2
	offsetY := (targetH - scaledH) / 2
	target := image.Rect(offsetX, offsetY, offsetX+scaledW, offsetY+scaledH)
	xdraw.CatmullRom.Scale(out, target, src, bounds, xdraw.Over, nil)

	outputPath := preparedPath(imagePath, format)
	dst, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("social: create prepared image: %w", err)
	}
	defer dst.Close()

	if err := jpeg.Encode(dst, out, &jpeg.Options{Quality: preparedJPEGQuality}); err != nil {
		return "", fmt.Errorf("social: encode prepared image: %w", err)
	}
	return outputPath, nil
}

// fitWithin scales (w, h) down to fit inside (maxW, maxH) preserving
// the aspect ratio. Images already inside the box keep their size.
// This is a pure function with no side effects.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	scaleW := float64(maxW) / float64(w)
	scaleH := float64(maxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	scaledW := int(float64(w) * scale)
	scaledH := int(float64(h) * scale)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	return scaledW, scaledH
}

// preparedPath derives the output filename for a prepared image.
func preparedPath(imagePath string, format Format) string {
	ext := filepath.Ext(imagePath)
	base := strings.TrimSuffix(imagePath, ext)
	return fmt.Sprintf("%s_instagram_%s.jpg", base, format)
}
