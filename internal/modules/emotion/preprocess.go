package emotion

import (
	"bytes"
	"fmt"
	"image"
	stddraw "image/draw"

	// Register decoders for the formats clients upload.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Preprocess converts raw encoded image bytes into a classifier-ready
// tensor: decode, grayscale, locate the primary face, crop, resize to
// FaceSize×FaceSize, scale intensities to [0,1].
//
// Failure taxonomy: undecodable bytes fail with ErrDecode, an empty locator
// result with ErrNoFace, and any other internal fault is wrapped as a
// *PreprocessError — the pipeline never lets an unstructured fault escape.
func Preprocess(data []byte, loc Locator) (t *Tensor, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, &PreprocessError{Cause: fmt.Errorf("%v", r)}
		}
	}()

	img, _, decodeErr := image.Decode(bytes.NewReader(data))
	if decodeErr != nil {
		return nil, ErrDecode
	}

	gray := toGray(img)

	faces := loc.Locate(gray)
	if len(faces) == 0 {
		return nil, ErrNoFace
	}

	face := gray.SubImage(largestBox(faces)).(*image.Gray)
	resized := resizeGray(face, FaceSize, FaceSize)

	return toTensor(resized), nil
}

// toGray converts any decoded image to single-channel luminance.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(gray, gray.Bounds(), img, b.Min, stddraw.Src)
	return gray
}

// largestBox picks the box with maximum area. Ties break toward the
// first-encountered box.
func largestBox(boxes []image.Rectangle) image.Rectangle {
	best := boxes[0]
	bestArea := best.Dx() * best.Dy()
	for _, box := range boxes[1:] {
		if area := box.Dx() * box.Dy(); area > bestArea {
			best, bestArea = box, area
		}
	}
	return best
}

// resizeGray performs a direct bilinear resize. No letterboxing: aspect
// distortion is preserved exactly as the classifier was trained on.
func resizeGray(src *image.Gray, w, h int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// toTensor scales 0-255 intensities to [0,1] floats in a single-sample,
// single-channel layout.
func toTensor(gray *image.Gray) *Tensor {
	var t Tensor
	for y := 0; y < FaceSize; y++ {
		for x := 0; x < FaceSize; x++ {
			t[0][y][x][0] = float32(gray.GrayAt(x, y).Y) / 255.0
		}
	}
	return &t
}
