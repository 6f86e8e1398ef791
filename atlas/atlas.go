// Copyright © 2024 Galvanized Logic Inc.

// Package atlas derives texture-bounds rectangles from a texture atlas
// image, so a sliced mesh's cross-section cap can be mapped onto one
// tile of a shared texture instead of the default full [0,1]x[0,1] UV
// square.
package atlas

// atlas.go decodes a texture image and converts a pixel sub-rectangle
// within it into meshslice.TextureBounds. Cobbled together the way
// load/ttf.go builds a font atlas from x/image: decode with the
// ecosystem package, then derive geometry data from the result.

import (
	"bytes"
	"fmt"
	"image"

	"golang.org/x/image/bmp"

	"github.com/gazed/meshslice"
)

// Image is a decoded texture atlas: its pixel bounds, used to convert
// a tile's pixel rectangle into normalized UV bounds.
type Image struct {
	bounds image.Rectangle
}

// Decode reads a BMP-encoded texture atlas from data. This package
// does no file I/O of its own; callers supply already-loaded bytes,
// same as load.Ttf takes ttfBytes rather than a path.
func Decode(data []byte) (*Image, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlas: bmp decode %w", err)
	}
	return &Image{bounds: img.Bounds()}, nil
}

// Tile converts a pixel sub-rectangle of the atlas — (px0,py0) to
// (px1,py1), top-left origin — into the meshslice.TextureBounds for
// that region. Returns an error if the rectangle falls outside the
// decoded image.
func (im *Image) Tile(px0, py0, px1, py1 int) (meshslice.TextureBounds, error) {
	r := image.Rect(px0, py0, px1, py1)
	if !r.In(im.bounds) {
		return meshslice.TextureBounds{}, fmt.Errorf("atlas: tile %v outside image bounds %v", r, im.bounds)
	}
	w := float32(im.bounds.Dx())
	h := float32(im.bounds.Dy())
	return meshslice.NewTextureBounds(
		float32(px0)/w, float32(py0)/h,
		float32(px1)/w, float32(py1)/h,
	), nil
}
