// Package assets bundles the audio played when a countdown elapses.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

// AlertSound is the logical path of the bundled alert clip.
const AlertSound = "sounds/chime.wav"

//go:embed sounds/*.wav
var files embed.FS

// Load returns the bytes of a bundled asset. Every call reads from the
// embedded filesystem; nothing is cached.
func Load(name string) ([]byte, error) {
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("load asset %q: %w", name, err)
	}
	return data, nil
}
