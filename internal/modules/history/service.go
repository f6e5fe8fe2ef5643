package history

import (
	"context"

	"github.com/mostafaAnwar9/EmotionDetection/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultLimit caps history queries when the client does not set one.
const DefaultLimit = 50

type Service struct {
	predictions *mongo.Collection
}

func NewService(predictions *mongo.Collection) *Service {
	return &Service{predictions: predictions}
}

// History returns the caller's prediction records, newest first. The filter
// is always scoped to userID; device_id only narrows it further.
func (s *Service) History(ctx context.Context, userID, deviceID string, limit int64) ([]models.Prediction, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := s.predictions.Find(ctx, historyFilter(userID, deviceID), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]models.Prediction, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Analytics groups the caller's records by emotion with count and mean
// confidence, most frequent first.
func (s *Service) Analytics(ctx context.Context, userID, deviceID string) ([]models.EmotionStat, error) {
	cursor, err := s.predictions.Aggregate(ctx, analyticsPipeline(userID, deviceID))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stats := make([]models.EmotionStat, 0)
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// historyFilter builds the find filter. user_id is unconditional: no query
// parameter combination can widen the match beyond the caller's records.
func historyFilter(userID, deviceID string) bson.M {
	filter := bson.M{"user_id": userID}
	if deviceID != "" {
		filter["device_id"] = deviceID
	}
	return filter
}

func analyticsPipeline(userID, deviceID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: historyFilter(userID, deviceID)}},
		{{Key: "$group", Value: bson.M{
			"_id":            "$emotion",
			"count":          bson.M{"$sum": 1},
			"avg_confidence": bson.M{"$avg": "$confidence"},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}
}
