package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"
	"lovejournal-backend/internal/validate"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultMilestoneName = "Our Special Day"

// UserService handles accounts, authentication and profiles
type UserService struct {
	users     UserStore
	couples   *CoupleService
	hasher    PasswordHasher
	clock     calendar.Clock
	jwtSecret string
	tokenTTL  time.Duration
}

// NewUserService creates a new user service
func NewUserService(
	users UserStore,
	couples *CoupleService,
	hasher PasswordHasher,
	clock calendar.Clock,
	jwtSecret string,
	tokenTTL time.Duration,
) *UserService {
	return &UserService{
		users:     users,
		couples:   couples,
		hasher:    hasher,
		clock:     clock,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// RegisterRequest represents a request to create an account
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	PartnerEmail string `json:"partner_email"`
}

// LoginRequest represents a request to sign in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries a session token and the signed-in user
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates an account and links it to a couple
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	name, err := validate.Required("name", req.Name, 0)
	if err != nil {
		return nil, err
	}
	email, err := validate.Email("email", req.Email)
	if err != nil {
		return nil, err
	}
	if err := validate.Password(req.Password); err != nil {
		return nil, err
	}
	var partnerEmail string
	if validate.Field("email", req.PartnerEmail) != "" {
		if partnerEmail, err = validate.Email("partner_email", req.PartnerEmail); err != nil {
			return nil, err
		}
		if partnerEmail == email {
			return nil, validate.Errorf("partner_email", "partner email must differ from your own")
		}
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID := uuid.New().String()
	coupleID, err := s.couples.Link(ctx, userID, email, partnerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to link couple: %w", err)
	}

	now := s.clock.Now()
	user := &models.User{
		ID:            userID,
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		PartnerEmail:  partnerEmail,
		CoupleID:      coupleID,
		MilestoneName: defaultMilestoneName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email, err := validate.Email("email", req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := s.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, User: user}, nil
}

// GenerateJWT generates a JWT token for a user
func (s *UserService) GenerateJWT(userID string) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.tokenTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a JWT token and returns the user ID
func (s *UserService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: user_id not found in token", ErrInvalidToken)
	}

	return userID, nil
}

// Authenticate resolves a bearer token to the calling user
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*Actor, error) {
	userID, err := s.ValidateJWT(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrInvalidToken)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &Actor{UserID: user.ID, CoupleID: user.CoupleID, Name: user.Name}, nil
}

// Profile is the signed-in user together with the partner, once joined
type Profile struct {
	User    *models.User `json:"user"`
	Partner *models.User `json:"partner"`
}

// GetProfile reads the user and partner from storage
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := &Profile{User: user}
	if user.CoupleID != "" {
		partner, err := s.couples.Partner(ctx, user.CoupleID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Partner = partner
	}
	return profile, nil
}

// UpdateProfileRequest carries the editable profile fields. A nil field is
// left untouched; an empty date clears it.
type UpdateProfileRequest struct {
	AnniversaryDate *string `json:"anniversary_date"`
	TogetherSince   *string `json:"together_since"`
	MilestoneName   *string `json:"milestone_name"`
}

// UpdateProfile persists profile changes and returns the stored record, so
// callers never rely on a stale session copy
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := s.clock.Now()
	loc := now.Location()
	if req.AnniversaryDate != nil {
		if user.AnniversaryDate, err = validate.Date("anniversary_date", *req.AnniversaryDate, loc); err != nil {
			return nil, err
		}
	}
	if req.TogetherSince != nil {
		if user.TogetherSince, err = validate.Date("together_since", *req.TogetherSince, loc); err != nil {
			return nil, err
		}
		if user.TogetherSince != nil && user.TogetherSince.After(now) {
			return nil, validate.Errorf("together_since", "together_since cannot be in the future")
		}
	}
	if req.MilestoneName != nil {
		user.MilestoneName = validate.Field("milestoneName", *req.MilestoneName)
		if user.MilestoneName == "" {
			user.MilestoneName = defaultMilestoneName
		}
	}
	user.UpdatedAt = now

	updated, err := s.users.UpdateProfile(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return updated, nil
}
