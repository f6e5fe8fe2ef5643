package emotion

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// encodePNG renders a grayscale test frame with the given bright regions.
func encodePNG(t *testing.T, w, h int, bright ...image.Rectangle) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for _, r := range bright {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func tensorMean(tensor *Tensor) float64 {
	var sum float64
	for y := 0; y < FaceSize; y++ {
		for x := 0; x < FaceSize; x++ {
			sum += float64(tensor[0][y][x][0])
		}
	}
	return sum / (FaceSize * FaceSize)
}

func TestPreprocessDecodeError(t *testing.T) {
	_, err := Preprocess([]byte("not an image"), FullFrameLocator{})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Preprocess() error = %v, want ErrDecode", err)
	}
	if !IsPipelineError(err) {
		t.Error("IsPipelineError(ErrDecode) = false, want true")
	}
}

func TestPreprocessNoFace(t *testing.T) {
	data := encodePNG(t, 64, 64)
	none := LocatorFunc(func(*image.Gray) []image.Rectangle { return nil })

	_, err := Preprocess(data, none)
	if !errors.Is(err, ErrNoFace) {
		t.Fatalf("Preprocess() error = %v, want ErrNoFace", err)
	}
}

func TestPreprocessSelectsLargestFace(t *testing.T) {
	// Two candidate boxes: area 100 (dark region) and area 200 (bright
	// region). The pipeline must crop the larger one, deterministically.
	small := image.Rect(0, 0, 10, 10)
	large := image.Rect(20, 0, 40, 10)
	data := encodePNG(t, 64, 64, large)

	loc := LocatorFunc(func(*image.Gray) []image.Rectangle {
		return []image.Rectangle{small, large}
	})

	for i := 0; i < 10; i++ {
		tensor, err := Preprocess(data, loc)
		if err != nil {
			t.Fatalf("Preprocess() error = %v", err)
		}
		if mean := tensorMean(tensor); mean < 0.9 {
			t.Fatalf("run %d: tensor mean = %f, want > 0.9 (largest box not selected)", i, mean)
		}
	}
}

func TestPreprocessAreaTieBreaksFirst(t *testing.T) {
	// Equal areas: the first-encountered box wins.
	first := image.Rect(0, 0, 10, 10)
	second := image.Rect(20, 0, 30, 10)
	data := encodePNG(t, 64, 64, first)

	loc := LocatorFunc(func(*image.Gray) []image.Rectangle {
		return []image.Rectangle{first, second}
	})

	tensor, err := Preprocess(data, loc)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if mean := tensorMean(tensor); mean < 0.9 {
		t.Errorf("tensor mean = %f, want > 0.9 (first box not selected on tie)", mean)
	}
}

func TestPreprocessScalesToUnitRange(t *testing.T) {
	data := encodePNG(t, 64, 64, image.Rect(0, 0, 32, 64))

	tensor, err := Preprocess(data, FullFrameLocator{})
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	for y := 0; y < FaceSize; y++ {
		for x := 0; x < FaceSize; x++ {
			v := tensor[0][y][x][0]
			if v < 0 || v > 1 {
				t.Fatalf("tensor[0][%d][%d][0] = %f, want in [0,1]", y, x, v)
			}
		}
	}
}

func TestPreprocessWrapsLocatorPanic(t *testing.T) {
	data := encodePNG(t, 64, 64)
	panicky := LocatorFunc(func(*image.Gray) []image.Rectangle {
		panic("cascade file corrupted")
	})

	_, err := Preprocess(data, panicky)
	var pe *PreprocessError
	if !errors.As(err, &pe) {
		t.Fatalf("Preprocess() error = %v, want *PreprocessError", err)
	}
	if !IsPipelineError(err) {
		t.Error("IsPipelineError(PreprocessError) = false, want true")
	}
}

func TestLargestBox(t *testing.T) {
	tests := []struct {
		name  string
		boxes []image.Rectangle
		want  image.Rectangle
	}{
		{
			"single",
			[]image.Rectangle{image.Rect(0, 0, 5, 5)},
			image.Rect(0, 0, 5, 5),
		},
		{
			"larger second",
			[]image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(0, 0, 10, 20)},
			image.Rect(0, 0, 10, 20),
		},
		{
			"tie keeps first",
			[]image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(5, 5, 15, 15)},
			image.Rect(0, 0, 10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := largestBox(tt.boxes); got != tt.want {
				t.Errorf("largestBox() = %v, want %v", got, tt.want)
			}
		})
	}
}
