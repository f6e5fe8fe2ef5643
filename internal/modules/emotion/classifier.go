package emotion

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// Classifier scores a normalized face tensor against the fixed emotion label
// set. The returned vector is indexed by models.EmotionLabels order.
type Classifier interface {
	Predict(ctx context.Context, t *Tensor) ([]float64, error)
}

// ModelClient is a Classifier backed by a TensorFlow Serving style REST
// endpoint: POST {"instances": [sample]} -> {"predictions": [[scores]]}.
type ModelClient struct {
	endpoint string
	httpc    *http.Client
}

// NewModelClient builds a client for the given prediction URL, e.g.
// http://localhost:8501/v1/models/emotion:predict.
func NewModelClient(endpoint string) *ModelClient {
	return &ModelClient{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: 30 * time.Second},
	}
}

type predictRequest struct {
	Instances [][FaceSize][FaceSize][1]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error"`
}

func (m *ModelClient) Predict(ctx context.Context, t *Tensor) ([]float64, error) {
	body, err := json.Marshal(predictRequest{Instances: t[:]})
	if err != nil {
		return nil, fmt.Errorf("encode model request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model server request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read model response: %w", err)
	}

	var out predictResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return nil, fmt.Errorf("model server: %s", out.Error)
		}
		return nil, fmt.Errorf("model server returned status %d", resp.StatusCode)
	}
	if len(out.Predictions) == 0 {
		return nil, fmt.Errorf("model server returned no predictions")
	}
	return out.Predictions[0], nil
}
