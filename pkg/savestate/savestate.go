// Package savestate frames saved emulator state in a small
// container: a magic, a version, an optionally brotli compressed
// payload and an xxhash of the uncompressed payload.
//
//	"GBRS" | version u8 | flags u8 | length u32 | payload | xxhash64
//
// All integers are little-endian. The payload is whatever the
// encoded types.Stater wrote, e.g. the 12 byte register layout.
package savestate

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gomeboy-registers/pkg/log"
	"github.com/thelolagemann/gomeboy-registers/pkg/types"
)

const (
	magic   = "GBRS"
	version = 1

	flagBrotli = types.Bit0

	headerSize  = len(magic) + 1 + 1 + 4
	trailerSize = 8

	// maxPayload bounds the decompressed payload.
	maxPayload = 1 << 20
)

var (
	ErrBadMagic  = errors.New("savestate: bad magic")
	ErrVersion   = errors.New("savestate: unsupported version")
	ErrChecksum  = errors.New("savestate: checksum mismatch")
	ErrTruncated = errors.New("savestate: truncated data")
	ErrTooLarge  = errors.New("savestate: payload too large")

	// ErrTrailingData is returned when the payload holds more
	// bytes than the destination loads.
	ErrTrailingData = errors.New("savestate: trailing data")
)

// Codec encodes and decodes save state containers.
type Codec struct {
	compress bool
	quality  int
	log      log.Logger
}

// NewCodec returns a Codec configured by opts. Without options
// the payload is stored uncompressed and nothing is logged.
func NewCodec(opts ...Opt) *Codec {
	c := &Codec{
		quality: brotli.DefaultCompression,
		log:     log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode saves src and wraps it in a container.
func (c *Codec) Encode(src types.Stater) ([]byte, error) {
	s := types.NewState()
	src.Save(s)
	raw := s.Bytes()

	payload := raw
	var flags uint8
	if c.compress {
		var buf bytes.Buffer
		w := brotli.NewWriterLevel(&buf, c.quality)
		if _, err := w.Write(raw); err != nil {
			return nil, fmt.Errorf("savestate: compressing: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("savestate: compressing: %w", err)
		}
		payload = buf.Bytes()
		flags |= flagBrotli
	}

	out := types.NewState()
	out.WriteData([]byte(magic))
	out.Write8(version)
	out.Write8(flags)
	out.Write32(uint32(len(payload)))
	out.WriteData(payload)
	out.Write64(xxhash.Sum64(raw))

	c.log.Debugf("savestate: encoded %d bytes (payload %d, compressed %t)", len(out.Bytes()), len(raw), c.compress)
	return out.Bytes(), nil
}

// Decode validates data and loads its payload into dst. The
// payload must be consumed exactly; on any error dst is left
// as it was.
func (c *Codec) Decode(data []byte, dst types.Stater) error {
	raw, err := c.unwrap(data)
	if err != nil {
		c.log.Errorf("%v", err)
		return err
	}

	backup := types.NewState()
	dst.Save(backup)

	s := types.StateFromBytes(raw)
	dst.Load(s)
	switch {
	case s.Err() != nil:
		err = fmt.Errorf("%w: %v", ErrTruncated, s.Err())
	case s.Remaining() != 0:
		err = fmt.Errorf("%w: %d of %d bytes unread", ErrTrailingData, s.Remaining(), len(raw))
	default:
		return nil
	}

	dst.Load(backup)
	c.log.Errorf("savestate: loading payload: %v", err)
	return err
}

// unwrap returns the verified, uncompressed payload of data.
func (c *Codec) unwrap(data []byte) ([]byte, error) {
	if len(data) < headerSize+trailerSize {
		return nil, ErrTruncated
	}

	s := types.StateFromBytes(data)
	m := make([]byte, len(magic))
	s.ReadData(m)
	if string(m) != magic {
		return nil, ErrBadMagic
	}
	if v := s.Read8(); v != version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	flags := s.Read8()
	n := int(s.Read32())
	if n > maxPayload {
		return nil, ErrTooLarge
	}
	if s.Remaining() != n+trailerSize {
		return nil, ErrTruncated
	}
	payload := make([]byte, n)
	s.ReadData(payload)
	sum := s.Read64()

	raw := payload
	if flags&flagBrotli != 0 {
		var err error
		raw, err = io.ReadAll(io.LimitReader(brotli.NewReader(bytes.NewReader(payload)), maxPayload+1))
		if err != nil {
			// a payload that does not inflate cannot match its checksum
			return nil, fmt.Errorf("%w: decompressing: %v", ErrChecksum, err)
		}
		if len(raw) > maxPayload {
			return nil, ErrTooLarge
		}
	}

	if xxhash.Sum64(raw) != sum {
		return nil, ErrChecksum
	}
	return raw, nil
}
