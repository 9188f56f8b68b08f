package user

import (
	"context"
	"errors"
	"time"

	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/Tomasz2002/AI-project/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrInvalidID          = errors.New("invalid id format")
)

func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (string, *User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	if dto.Name == "" || dto.Email == "" || dto.Password == "" {
		return nil, ErrMissingFields
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if existing != nil {
		log.Warnf("Registration attempt with taken email: %s", dto.Email)
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), 10)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := &User{
		Name:     dto.Name,
		Email:    dto.Email,
		Password: string(hashed),
		Role:     "user",
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.Infof("User registered: %s", u.ID.String())
	return u, nil
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (string, *User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		log.Warnf("Failed login attempt for %s", dto.Email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), u.Role, tokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to sign JWT")
		return "", nil, err
	}

	return token, u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(parsed)
	if err != nil {
		log.WithError(err).Error("Failed to fetch user")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
