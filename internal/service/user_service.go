package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"fittrack/internal/domain"
	"fittrack/internal/repository"
	"fittrack/internal/storage"
	"fittrack/internal/validation"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")

// UserService manages profiles, preferences and weight history.
type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, patch map[string]any) (*domain.User, error)
	UploadAvatar(ctx context.Context, userID primitive.ObjectID, fileName, contentType string, body io.Reader, size int64) (string, error)
	WeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error)
	AddWeightEntry(ctx context.Context, userID primitive.ObjectID, weight float64, date time.Time) ([]domain.WeightEntry, error)
}

type userService struct {
	userRepo    repository.UserRepository
	fileStorage storage.FileStorage
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repository.UserRepository, fileStorage storage.FileStorage) UserService {
	return &userService{
		userRepo:    userRepo,
		fileStorage: fileStorage,
	}
}

// GetProfile returns the user without the password hash.
func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies a partial update. Only fields in the profile
// allowlist may appear in the patch; the nested profile object is checked
// field by field against its own schema.
func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, patch map[string]any) (*domain.User, error) {
	if err := validation.UserProfile.ValidateUpdate(patch); err != nil {
		return nil, err
	}
	if nested, ok := patch["profile"].(map[string]any); ok {
		if err := validation.ProfileFields.ValidateUpdate(nested); err != nil {
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if username, ok := patch["username"].(string); ok {
		user.Username = username
	}
	if email, ok := patch["email"].(string); ok {
		user.Email = email
	}
	if nested, ok := patch["profile"].(map[string]any); ok {
		applyProfile(&user.Profile, nested)
	}
	if nested, ok := patch["preferences"].(map[string]any); ok {
		applyPreferences(&user.Preferences, nested)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UploadAvatar stores the image in object storage and records a download
// URL on the profile. Returns the URL.
func (s *userService) UploadAvatar(ctx context.Context, userID primitive.ObjectID, fileName, contentType string, body io.Reader, size int64) (string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	objectKey := fmt.Sprintf("avatars/%s/%s%s", userID.Hex(), uuid.NewString(), path.Ext(fileName))
	if err := s.fileStorage.PutObject(ctx, objectKey, contentType, body, size); err != nil {
		return "", err
	}

	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return "", err
	}

	user.AvatarURL = url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

// WeightHistory returns the user's logged weight entries.
func (s *userService) WeightHistory(ctx context.Context, userID primitive.ObjectID) ([]domain.WeightEntry, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.WeightHistory, nil
}

// AddWeightEntry appends a weight record and returns the updated history.
func (s *userService) AddWeightEntry(ctx context.Context, userID primitive.ObjectID, weight float64, date time.Time) ([]domain.WeightEntry, error) {
	if weight <= 0 {
		return nil, &validation.ValidationError{Field: "weight", Reason: "must be positive"}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.AddWeightEntry(weight, date)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.WeightHistory, nil
}

func applyProfile(p *domain.Profile, patch map[string]any) {
	if v, ok := patch["height"]; ok {
		if n, ok := toFloat(v); ok {
			p.Height = n
		}
	}
	if v, ok := patch["weight"]; ok {
		if n, ok := toFloat(v); ok {
			p.Weight = n
		}
	}
	if v, ok := patch["age"]; ok {
		if n, ok := toFloat(v); ok {
			p.Age = int(n)
		}
	}
	if v, ok := patch["gender"].(string); ok {
		p.Gender = domain.Gender(v)
	}
	if v, ok := patch["activityLevel"].(string); ok {
		p.ActivityLevel = domain.ActivityLevel(v)
	}
}

func applyPreferences(p *domain.Preferences, patch map[string]any) {
	if v, ok := patch["theme"].(string); ok {
		p.Theme = v
	}
	if nested, ok := patch["notifications"].(map[string]any); ok {
		if v, ok := nested["email"].(bool); ok {
			p.Notifications.Email = v
		}
		if v, ok := nested["push"].(bool); ok {
			p.Notifications.Push = v
		}
	}
	if nested, ok := patch["units"].(map[string]any); ok {
		if v, ok := nested["weight"].(string); ok {
			p.Units.Weight = v
		}
		if v, ok := nested["height"].(string); ok {
			p.Units.Height = v
		}
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
