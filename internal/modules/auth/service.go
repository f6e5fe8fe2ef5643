package auth

import (
	"context"
	"errors"
	"time"

	"github.com/mostafaAnwar9/EmotionDetection/internal/models"
	"github.com/mostafaAnwar9/EmotionDetection/internal/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	users *mongo.Collection
}

func NewService(users *mongo.Collection) *Service { return &Service{users: users} }

// FindByEmail returns the account for an email, or (nil, nil) when absent.
// Satisfies middleware.UserFinder.
func (s *Service) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Register creates a new account. Duplicate emails fail with errEmailTaken,
// backed by the unique index on users.email.
func (s *Service) Register(ctx context.Context, dto *RegisterDTO) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := models.User{
		Email:     dto.Email,
		Password:  string(hash),
		Name:      dto.Name,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.users.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errEmailTaken
		}
		return err
	}
	return nil
}

// Login verifies credentials and issues a session token. Unknown user and
// wrong password are distinct errors here; the handler collapses both to the
// same status code.
func (s *Service) Login(ctx context.Context, dto *LoginDTO) (string, *models.User, error) {
	u, err := s.FindByEmail(ctx, dto.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, errUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return "", nil, errWrongPassword
	}

	token, err := jwt.Sign(u.Email)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
