// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagefmt decodes encoded image bytes into the RGBA8 pixel
// buffers uploaded as textures.
package imagefmt

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"cogentcore.org/core/base/iox/imagex"
	"github.com/anthonynsimon/bild/clone"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

var (
	// ErrUnsupported is returned for bytes that are not in a supported
	// image encoding.
	ErrUnsupported = errors.New("imagefmt: unsupported image format")

	// ErrMalformed is returned when the bytes look like a supported
	// format but cannot be decoded.
	ErrMalformed = errors.New("imagefmt: malformed image data")
)

// Detect returns the format of the encoded image from its magic bytes.
func Detect(data []byte) (imagex.Formats, error) {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return imagex.None, ErrUnsupported
	}
	f, err := imagex.ExtToFormat(kind.Extension)
	if err != nil {
		return imagex.None, fmt.Errorf("%w: %s", ErrUnsupported, kind.MIME.Value)
	}
	return f, nil
}

func decoder(f imagex.Formats) func(io.Reader) (image.Image, error) {
	switch f {
	case imagex.PNG:
		return png.Decode
	case imagex.JPEG:
		return jpeg.Decode
	case imagex.GIF:
		return gif.Decode
	case imagex.TIFF:
		return tiff.Decode
	case imagex.BMP:
		return bmp.Decode
	case imagex.WebP:
		return webp.Decode
	}
	return nil
}

// Decode decodes the image bytes and returns them as RGBA8, along
// with the detected format. Unknown or malformed data is an error:
// a blank image is never returned in place of a failed decode.
// The decoders always return images whose bounds start at the origin.
func Decode(data []byte) (*image.RGBA, imagex.Formats, error) {
	f, err := Detect(data)
	if err != nil {
		return nil, imagex.None, err
	}
	img, err := decoder(f)(bytes.NewReader(data))
	if err != nil {
		return nil, f, fmt.Errorf("%w: %v: %w", ErrMalformed, f, err)
	}
	rgba := clone.AsRGBA(img)
	if rgba.Rect.Empty() {
		return nil, f, fmt.Errorf("%w: %v image is empty", ErrMalformed, f)
	}
	return rgba, f, nil
}
