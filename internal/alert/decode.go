package alert

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// Decode picks a decoder from the asset's extension.
func Decode(name string, data []byte) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
		err    error
	)

	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".wav":
		stream, format, err = wav.Decode(bytes.NewReader(data))
	case ".mp3":
		stream, format, err = mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: unsupported extension %q", ErrAssetDecode, ext)
	}

	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("%w: %s: %v", ErrAssetDecode, name, err)
	}

	return stream, format, nil
}
