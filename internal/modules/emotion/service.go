package emotion

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mostafaAnwar9/EmotionDetection/internal/models"
)

// Recorder persists prediction records. Satisfied by *mongo.Collection
// through the recorder adapter in the app wiring; faked in tests.
type Recorder interface {
	Insert(ctx context.Context, p *models.Prediction) error
}

type Service struct {
	locator    Locator
	classifier Classifier
	records    Recorder
}

func NewService(locator Locator, classifier Classifier, records Recorder) *Service {
	return &Service{locator: locator, classifier: classifier, records: records}
}

// Predict runs the full inference path: normalize the image, classify once,
// pick the top label, persist the record, return the result.
//
// A persistence failure fails the whole call; a classification without its
// audit record is never reported as success.
func (s *Service) Predict(ctx context.Context, imageData []byte, userID, deviceID string) (*PredictionResult, error) {
	tensor, err := Preprocess(imageData, s.locator)
	if err != nil {
		return nil, err
	}

	scores, err := s.classifier.Predict(ctx, tensor)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if len(scores) != len(models.EmotionLabels) {
		return nil, fmt.Errorf("classifier returned %d scores, want %d", len(scores), len(models.EmotionLabels))
	}

	idx := argmax(scores)
	record := models.Prediction{
		RequestID:  uuid.New().String(),
		Timestamp:  time.Now().UTC(),
		Emotion:    models.EmotionLabels[idx],
		Confidence: scores[idx],
		DeviceID:   deviceID,
		UserID:     userID,
	}

	if err := s.records.Insert(ctx, &record); err != nil {
		return nil, fmt.Errorf("persist prediction: %w", err)
	}

	return &PredictionResult{
		Emotion:    record.Emotion,
		Confidence: record.Confidence,
		RequestID:  record.RequestID,
	}, nil
}

// argmax returns the index of the maximum score. Ties break toward the
// lowest index, matching the classifier's label ordering contract.
func argmax(scores []float64) int {
	best := 0
	for i, v := range scores {
		if v > scores[best] {
			best = i
		}
	}
	return best
}
