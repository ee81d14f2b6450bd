package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/jpeg"
	"image/png"

	"github.com/chromedp/chromedp"

	"github.com/sketchwall/sketchwall/pkg/canvas"
	"github.com/sketchwall/sketchwall/pkg/errors"
)

// jpegQuality is the encoder quality for JPEG output.
const jpegQuality = 90

// ToPNG renders the board and rasterizes the document with a headless
// Chromium instance. The browser does the SVG compositing, so raster
// output matches what viewers display, fonts and filters included.
func ToPNG(ctx context.Context, board *canvas.Board, opts Options) ([]byte, error) {
	svg, err := Render(board, opts)
	if err != nil {
		return nil, err
	}
	return RasterizeSVG(ctx, svg)
}

// ToJPEG renders the board to PNG and re-encodes it as JPEG.
func ToJPEG(ctx context.Context, board *canvas.Board, opts Options) ([]byte, error) {
	shot, err := ToPNG(ctx, board, opts)
	if err != nil {
		return nil, err
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRaster, err, "failed to decode screenshot")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRaster, err, "failed to encode JPEG")
	}
	return buf.Bytes(), nil
}

// RasterizeSVG screenshots an SVG document in headless Chromium and
// returns PNG bytes. The document is loaded through a base64 data URI,
// so nothing touches the filesystem.
func RasterizeSVG(ctx context.Context, svg []byte) ([]byte, error) {
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(svg)

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}

	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRaster, err, "chromium rasterization failed")
	}
	if len(shot) == 0 {
		return nil, errors.New(errors.ErrCodeRaster, "screenshot buffer is empty")
	}
	return shot, nil
}
