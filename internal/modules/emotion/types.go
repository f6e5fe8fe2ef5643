package emotion

import (
	"errors"
	"fmt"
)

// FaceSize is the classifier's input resolution.
const FaceSize = 48

// Tensor is one normalized sample in the shape the classifier expects:
// batch × height × width × channel, grayscale intensities scaled to [0,1].
type Tensor [1][FaceSize][FaceSize][1]float32

// Pipeline failure kinds. All surface to the client as 400 with the message
// text below; anything else that goes wrong inside the pipeline is wrapped
// as a PreprocessError.
var (
	ErrDecode = errors.New("Failed to decode image")
	ErrNoFace = errors.New("No face detected")
)

// PreprocessError wraps an unexpected internal fault from the normalization
// pipeline so it never propagates unstructured.
type PreprocessError struct {
	Cause error
}

func (e *PreprocessError) Error() string {
	return fmt.Sprintf("Error in preprocessing: %v", e.Cause)
}

func (e *PreprocessError) Unwrap() error { return e.Cause }

// IsPipelineError reports whether err belongs to the normalization failure
// taxonomy (client-attributable, 400).
func IsPipelineError(err error) bool {
	var pe *PreprocessError
	return errors.Is(err, ErrDecode) || errors.Is(err, ErrNoFace) || errors.As(err, &pe)
}

// PredictionResult is what a successful inference returns to the caller.
type PredictionResult struct {
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
	RequestID  string  `json:"request_id"`
}
