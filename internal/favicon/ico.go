package favicon

import (
	"bytes"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

// EncodeICO packs the frames into one multi-resolution ICO container, in order.
func EncodeICO(frames []image.Image) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames to encode")
	}
	for i, frame := range frames {
		b := frame.Bounds()
		if b.Dx() != b.Dy() {
			return nil, fmt.Errorf("frame %d is %dx%d, expected square", i, b.Dx(), b.Dy())
		}
		if b.Dx() > 256 {
			return nil, fmt.Errorf("frame %d is %dpx, ICO supports at most 256", i, b.Dx())
		}
	}
	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}
