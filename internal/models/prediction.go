package models

import "time"

// EmotionLabels is the classifier's output label set, in classifier index
// order. The ordering is part of the external contract: argmax ties break
// toward the first-occurring label, and downstream clients rely on it.
var EmotionLabels = []string{"angry", "disgust", "fear", "happy", "sad", "surprise", "neutral"}

// Prediction is the immutable audit record for one classification event.
// Records are write-once: inserted by the inference path, read-only through
// the history/analytics endpoints.
type Prediction struct {
	RequestID  string    `json:"request_id" bson:"request_id"`
	Timestamp  time.Time `json:"timestamp"  bson:"timestamp"`
	Emotion    string    `json:"emotion"    bson:"emotion"`
	Confidence float64   `json:"confidence" bson:"confidence"`
	DeviceID   string    `json:"device_id,omitempty" bson:"device_id,omitempty"`
	UserID     string    `json:"user_id"    bson:"user_id"`
}

// EmotionStat is one row of the grouped analytics result.
type EmotionStat struct {
	Emotion       string  `json:"_id"            bson:"_id"`
	Count         int64   `json:"count"          bson:"count"`
	AvgConfidence float64 `json:"avg_confidence" bson:"avg_confidence"`
}
