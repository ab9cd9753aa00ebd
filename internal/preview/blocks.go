package preview

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"

	// Decoders for the formats the block renderer understands.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// upperHalfBlock is drawn with the top pixel as foreground and the bottom
// pixel as background, so each cell shows two vertically stacked pixels.
const upperHalfBlock = "▀"

// BlockRenderer draws images with 24-bit ANSI colors and half blocks.
// It needs no external program.
type BlockRenderer struct{}

// NewBlockRenderer returns the built-in renderer.
func NewBlockRenderer() *BlockRenderer {
	return &BlockRenderer{}
}

// Name returns "blocks".
func (r *BlockRenderer) Name() string {
	return RendererBlocks
}

// Render decodes data and draws it scaled to fit size, keeping the aspect
// ratio. png, jpeg, gif, webp, bmp and tiff are supported.
func (r *BlockRenderer) Render(ctx context.Context, data []byte, size Size, w io.Writer) error {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return fmt.Errorf("%w: empty image", ErrUnsupportedImage)
	}
	if size.Width <= 0 || size.Height <= 0 {
		return ErrInvalidSize
	}

	tw, th := fit(bounds.Dx(), bounds.Dy(), size.Width, size.Height*2)
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	bw := bufio.NewWriter(w)
	for y := 0; y < th; y += 2 {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < tw; x++ {
			top := dst.RGBAAt(x, y)
			bottom := color.RGBA{}
			if y+1 < th {
				bottom = dst.RGBAAt(x, y+1)
			}
			fmt.Fprintf(bw, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, upperHalfBlock)
		}
		bw.WriteString("\x1b[0m\n")
	}
	return bw.Flush()
}

// fit returns the largest width and height not exceeding maxW and maxH
// that keep the sw:sh ratio. Both results are at least 1.
func fit(sw, sh, maxW, maxH int) (int, int) {
	scale := min(float64(maxW)/float64(sw), float64(maxH)/float64(sh))
	tw := max(1, int(float64(sw)*scale+0.5))
	th := max(1, int(float64(sh)*scale+0.5))
	return min(tw, maxW), min(th, maxH)
}
