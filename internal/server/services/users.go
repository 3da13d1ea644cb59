package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/common"
	"github.com/Anish2905/JobApplicantTracker/internal/models"
	"github.com/Anish2905/JobApplicantTracker/internal/server/auth"
	"github.com/Anish2905/JobApplicantTracker/internal/server/config"
	"github.com/Anish2905/JobApplicantTracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// UserService registers accounts and exchanges username/PIN for bearer
// tokens. Usernames are stored lowercase; login failures never reveal
// whether the username or the PIN was wrong.
type UserService struct {
	repos         repomanager.RepositoryManager
	secretKey     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

func NewUserService(repos repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repos:         repos,
		secretKey:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

func validateCredentials(username, pin string) error {
	if username == "" || pin == "" {
		return fmt.Errorf("%w: username and PIN required", common.ErrValidation)
	}
	if len(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", common.ErrValidation)
	}
	if !pinPattern.MatchString(pin) {
		return fmt.Errorf("%w: PIN must be exactly 4 digits", common.ErrValidation)
	}
	return nil
}

// Register creates an account and returns a signed token plus the new
// user id.
func (s *UserService) Register(ctx context.Context, username, pin string) (string, string, error) {
	if err := validateCredentials(username, pin); err != nil {
		return "", "", err
	}

	username = strings.ToLower(username)
	repo := s.repos.Users(s.repos.Conn())

	if _, err := repo.GetByUsername(ctx, username); err == nil {
		return "", "", common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrNotFound) {
		return "", "", err
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), s.bcryptCost)
	if err != nil {
		return "", "", fmt.Errorf("hashing pin: %w", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  username,
		PinHash:   string(pinHash),
		CreatedAt: models.TimestampNow(),
	}
	if err := repo.Create(ctx, user); err != nil {
		return "", "", fmt.Errorf("creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return "", "", common.ErrInternal
	}
	return token, user.ID, nil
}

// Login verifies the PIN and returns a signed token plus the user id.
func (s *UserService) Login(ctx context.Context, username, pin string) (string, string, error) {
	if username == "" || pin == "" {
		return "", "", fmt.Errorf("%w: username and PIN required", common.ErrValidation)
	}

	repo := s.repos.Users(s.repos.Conn())
	user, err := repo.GetByUsername(ctx, strings.ToLower(username))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", "", common.ErrUnauthorized
		}
		return "", "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(pin)) != nil {
		return "", "", common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return "", "", common.ErrInternal
	}
	return token, user.ID, nil
}
