package emotion

import (
	"context"

	"github.com/mostafaAnwar9/EmotionDetection/internal/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRecorder persists prediction records to the predictions collection.
type MongoRecorder struct {
	coll *mongo.Collection
}

func NewMongoRecorder(coll *mongo.Collection) *MongoRecorder {
	return &MongoRecorder{coll: coll}
}

func (r *MongoRecorder) Insert(ctx context.Context, p *models.Prediction) error {
	_, err := r.coll.InsertOne(ctx, p)
	return err
}
