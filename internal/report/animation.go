package report

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"

	"github.com/icza/mjpeg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dcaye93/ftc-liberation-FEM/internal/growth"
	"github.com/dcaye93/ftc-liberation-FEM/internal/scenario"
)

// Animation settings.
const (
	frameRate   = 4  // frames per second
	jpegQuality = 75 // JPEG encoding quality for the video frames
)

// addLabel draws a text label onto an image at the specified position.
func addLabel(img *image.RGBA, x, y int, label string, col color.Color) {
	point := fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13, // Basic font for rendering
		Dot:  point,
	}
	d.DrawString(label)
}

// chartFrame renders one animation frame: the chart truncated to years
// 0..year with a year label stamped in the corner.
func chartFrame(l *growth.Ledger, sc scenario.Scenario, year int) (*image.RGBA, error) {
	pngBytes, err := renderChart(l, sc, year)
	if err != nil {
		return nil, err
	}
	chartImg, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("decode chart frame: %w", err)
	}

	frame := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(frame, frame.Bounds(), chartImg, image.Point{}, draw.Over)

	addLabel(frame, 20, 20, fmt.Sprintf("Year %d", year), color.Black)
	return frame, nil
}

// WriteAnimation renders the chart year by year into an MJPEG video.
func WriteAnimation(path string, l *growth.Ledger, sc scenario.Scenario) error {
	videoWriter, err := mjpeg.New(path, int32(chartWidth), int32(chartHeight), int32(frameRate))
	if err != nil {
		return fmt.Errorf("create mjpeg writer: %w", err)
	}
	defer videoWriter.Close()

	var buf bytes.Buffer
	jpegOptions := &jpeg.Options{Quality: jpegQuality}

	// go-chart needs two points for a line, so frames start at year 1.
	for year := 1; year < len(l.Years); year++ {
		frame, err := chartFrame(l, sc, year)
		if err != nil {
			return err
		}
		if err := jpeg.Encode(&buf, frame, jpegOptions); err != nil {
			return fmt.Errorf("encode frame %d: %w", year, err)
		}
		if err := videoWriter.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("add frame %d: %w", year, err)
		}
		buf.Reset()
	}
	return nil
}
