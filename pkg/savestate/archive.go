package savestate

import (
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
	"github.com/thelolagemann/gomeboy-registers/pkg/types"
)

var ErrEmptyArchive = errors.New("savestate: archive has no files")

// DecodeArchive reads the first file of a 7z archive and
// decodes it into dst.
func (c *Codec) DecodeArchive(r io.ReaderAt, size int64, dst types.Stater) error {
	a, err := sevenzip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("savestate: opening archive: %w", err)
	}
	if len(a.File) == 0 {
		return ErrEmptyArchive
	}

	f, err := a.File[0].Open()
	if err != nil {
		return fmt.Errorf("savestate: opening %s: %w", a.File[0].Name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, int64(maxPayload+headerSize+trailerSize)))
	if err != nil {
		return fmt.Errorf("savestate: reading %s: %w", a.File[0].Name, err)
	}
	c.log.Debugf("savestate: read %d bytes from %s", len(data), a.File[0].Name)
	return c.Decode(data, dst)
}
