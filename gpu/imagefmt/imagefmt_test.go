// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagefmt

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func checker(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, color.NRGBA{255, 0, 0, 255})
			} else {
				img.Set(x, y, color.NRGBA{0, 0, 255, 255})
			}
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodePNG(t *testing.T) {
	data := encodePNG(t, checker(4, 3))
	rgba, f, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, image.Rect(0, 0, 4, 3), rgba.Rect)
	assert.Equal(t, 16, rgba.Stride)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(1, 0))
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, checker(2, 2)))
	rgba, f, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, imagex.BMP, f)
	assert.Equal(t, 2, rgba.Rect.Dx())
}

func TestDecodeMalformed(t *testing.T) {
	_, _, err := Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupported)

	_, _, err = Decode(nil)
	assert.ErrorIs(t, err, ErrUnsupported)

	data := encodePNG(t, checker(8, 8))
	_, f, err := Decode(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, imagex.PNG, f)
}

func TestDecodeOrigin(t *testing.T) {
	src := checker(6, 5).SubImage(image.Rect(2, 1, 6, 5))
	rgba, _, err := Decode(encodePNG(t, src))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), rgba.Rect)
	assert.Equal(t, 16, rgba.Stride)
	assert.Len(t, rgba.Pix, 4*4*4)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(1, 0))
}

func TestDetect(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, checker(1, 1)))
	f, err := Detect(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, imagex.BMP, f)
	assert.Equal(t, "BMP", f.String())

	f, err = Detect([]byte("%PDF-1.4\n"))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, imagex.None, f)
}
