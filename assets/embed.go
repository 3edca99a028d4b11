// Package assets owns the embedded game data (textures, tile maps) and the
// texture manager plus entity factories built on top of it.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images/* maps/*
var assetsFS embed.FS

// LoadImage decodes an embedded or on-disk PNG into an ebiten image. A file
// on disk shadows the embedded copy.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ReadMap returns the raw bytes of a map grid file.
func ReadMap(path string) ([]byte, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read map %s: %w", path, err)
	}
	return b, nil
}

func readFile(path string) ([]byte, error) {
	clean := filepath.ToSlash(path)
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}
