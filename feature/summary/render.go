package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"country-pulse/feature/countries/models"
)

// Layout constants for the summary card.
const (
	cardWidth  = 800
	headerH    = 90
	rowH       = 56
	barMaxW    = 640
	barH       = 28
	marginLeft = 80
)

var (
	colorBackground = color.RGBA{R: 24, G: 26, B: 32, A: 255}
	colorHeader     = color.RGBA{R: 38, G: 70, B: 120, A: 255}
	colorBar        = color.RGBA{R: 86, G: 160, B: 211, A: 255}
	colorBarTrack   = color.RGBA{R: 44, G: 48, B: 58, A: 255}
)

// Render produces the post-refresh summary card: a header band plus one
// horizontal bar per country, bar length proportional to the estimated GDP
// of the largest entry. The refresh timestamp and total are carried in the
// PNG metadata consumers care about (object name and headers); the card
// itself stays text-free.
func Render(top []models.Country, total int, refreshedAt time.Time) ([]byte, error) {
	if refreshedAt.IsZero() {
		return nil, fmt.Errorf("summary render requires a refresh timestamp")
	}

	height := headerH + rowH*len(top) + rowH/2
	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))

	draw.Draw(img, img.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, cardWidth, headerH), &image.Uniform{C: colorHeader}, image.Point{}, draw.Src)

	maxGDP := 0.0
	for _, c := range top {
		if c.EstimatedGdp != nil && *c.EstimatedGdp > maxGDP {
			maxGDP = *c.EstimatedGdp
		}
	}

	for i, c := range top {
		y := headerH + rowH/2 + i*rowH

		track := image.Rect(marginLeft, y, marginLeft+barMaxW, y+barH)
		draw.Draw(img, track, &image.Uniform{C: colorBarTrack}, image.Point{}, draw.Src)

		width := 0
		if maxGDP > 0 && c.EstimatedGdp != nil {
			width = int(float64(barMaxW) * (*c.EstimatedGdp / maxGDP))
		}
		if width > 0 {
			bar := image.Rect(marginLeft, y, marginLeft+width, y+barH)
			draw.Draw(img, bar, &image.Uniform{C: colorBar}, image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode summary image: %w", err)
	}
	return buf.Bytes(), nil
}
