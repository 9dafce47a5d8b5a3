package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/devmarq/bookmarkd/internal/domain/entity"
	repo "github.com/devmarq/bookmarkd/internal/domain/repository"
	"github.com/devmarq/bookmarkd/pkg/helpers"
	"github.com/devmarq/bookmarkd/pkg/mailer"
)

var (
	// ErrCredentialsTaken means the signup email is already registered.
	ErrCredentialsTaken = errors.New("credentials taken")
	// ErrCredentialsIncorrect covers both unknown email and wrong password.
	// The two must stay indistinguishable to prevent account enumeration.
	ErrCredentialsIncorrect = errors.New("credentials incorrect")
	// ErrUserNotFound is returned for a token identity with no backing row.
	ErrUserNotFound = errors.New("user not found")
	// ErrDenied covers actions on a bookmark that is absent or not owned by
	// the caller; the two cases are deliberately conflated.
	ErrDenied = errors.New("access to resource denied")
)

// AuthService handles signup, signin and token issuance.
type AuthService struct {
	Users   repo.UserRepository
	JWT     *helpers.JWTManager
	Pub     *helpers.RabbitPublisher
	Logger  *logrus.Logger
	AppName string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, pub *helpers.RabbitPublisher, logger *logrus.Logger, appName string) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Pub: pub, Logger: logger, AppName: appName}
}

// Signup creates a user with a bcrypt-hashed password. Email uniqueness is
// enforced by the store's unique index, not a pre-check, so concurrent
// signups with the same email cannot race past the constraint.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrCredentialsTaken
		}
		return nil, err
	}
	s.enqueueWelcome(ctx, u)
	return u, nil
}

// Signin verifies the credentials and returns a signed access token. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return "", time.Time{}, ErrCredentialsIncorrect
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrCredentialsIncorrect
	}
	return s.SignToken(u.ID, u.Email)
}

// SignToken issues a bearer token carrying {userId, email}, expiring after
// the configured access TTL.
func (s *AuthService) SignToken(userID int64, email string) (string, time.Time, error) {
	token, exp, err := s.JWT.GenerateAccessToken(userID, email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("generate access token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// enqueueWelcome puts a welcome email job on the queue. Failures only warn;
// signup never depends on the mail pipeline.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data: map[string]any{
			"Name":    u.FirstName,
			"Email":   u.Email,
			"AppName": s.AppName,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("enqueue welcome email failed")
	}
}
