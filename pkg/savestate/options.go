package savestate

import (
	"github.com/andybalholm/brotli"
	"github.com/thelolagemann/gomeboy-registers/pkg/log"
)

// Opt is a function that modifies a Codec.
type Opt func(c *Codec)

// WithCompression compresses the payload with brotli at the
// given quality (0-11). Quality is clamped to that range.
func WithCompression(quality int) Opt {
	return func(c *Codec) {
		if quality < brotli.BestSpeed {
			quality = brotli.BestSpeed
		} else if quality > brotli.BestCompression {
			quality = brotli.BestCompression
		}
		c.compress = true
		c.quality = quality
	}
}

func WithLogger(l log.Logger) Opt {
	return func(c *Codec) {
		c.log = l
	}
}
