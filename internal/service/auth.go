package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/safebite/backend/internal/models"
	"github.com/safebite/backend/internal/types"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles patient registration and login against the relational
// patient store, and issues the API tokens the middleware validates.
type AuthService struct {
	db        *gorm.DB
	profile   *ProfileService
	jwtSecret string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(db *gorm.DB, profile *ProfileService, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		profile:   profile,
		jwtSecret: jwtSecret,
	}
}

// Register creates the patient record, mirrors the allergies/symptoms
// strings into the profile store and returns a signed token.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", err
	}

	patient := models.PatientProfile{
		UserID:    user.ID,
		Birthdate: req.Birthdate,
		Age:       req.Age,
		Weight:    req.Weight,
		Symptoms:  req.Symptoms,
	}
	if err := s.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return "", err
	}

	for _, term := range strings.Split(req.Allergies, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		record := models.Allergen{
			UserID:        user.ID,
			AllergenName:  term,
			SeverityLevel: 1,
		}
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return "", err
		}
	}

	if err := s.profile.SaveAllergies(ctx, user.ID, req.Allergies); err != nil {
		return "", err
	}
	if err := s.profile.SaveSymptoms(ctx, user.ID, req.Symptoms); err != nil {
		return "", err
	}

	return s.generateToken(user.ID, user.Email)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.generateToken(user.ID, user.Email)
}

func (s *AuthService) generateToken(userID uuid.UUID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and validates a token string.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	return &types.TokenClaims{UserID: userID, Email: email}, nil
}
