package export

import (
	"image"
	"image/png"
	"io"
)

// pngEncoder is lossless, so there is no quality knob to honour.
var pngEncoder = png.Encoder{CompressionLevel: png.DefaultCompression}

func EncodePNG(w io.Writer, img image.Image) error {
	return pngEncoder.Encode(w, img)
}
