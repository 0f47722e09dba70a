package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/staffdir/staffdir-backend/internal/config"
	"github.com/staffdir/staffdir-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// ============================================
// Auth Service
// ============================================

type Login struct {
	ID       int
	RoleType repository.AuthRole
	Token    string
}

type AuthService interface {
	// Login fails with ErrInvalidCredentials for unknown usernames and wrong
	// passwords alike; callers must not be able to tell the two apart.
	Login(ctx context.Context, username, password string) (*Login, error)
	Register(ctx context.Context, username, password string) (*Login, error)
	ValidateToken(token string) (*jwt.Token, error)
	GetAuthIDFromToken(token *jwt.Token) (int, error)
}

type authService struct {
	cfg      *config.Config
	authRepo repository.AuthRepository
}

func NewAuthService(cfg *config.Config, authRepo repository.AuthRepository) AuthService {
	return &authService{cfg: cfg, authRepo: authRepo}
}

func (s *authService) Login(ctx context.Context, username, password string) (*Login, error) {
	auth, err := s.authRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Printf("[AuthService] Login - %v", err)
		return nil, err
	}
	if auth == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(auth.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(auth.ID, auth.RoleType)
	if err != nil {
		log.Printf("[AuthService] Login - %v", err)
		return nil, err
	}
	return &Login{ID: auth.ID, RoleType: auth.RoleType, Token: token}, nil
}

func (s *authService) Register(ctx context.Context, username, password string) (*Login, error) {
	existing, err := s.authRepo.FindByUsername(ctx, username)
	if err != nil {
		log.Printf("[AuthService] Register - %v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	auth := &repository.Auth{
		Username: username,
		Password: string(hashed),
		RoleType: repository.AuthRoleWorker,
	}
	if err := s.authRepo.Create(ctx, auth); err != nil {
		log.Printf("[AuthService] Register - %v", err)
		return nil, err
	}

	token, err := s.generateToken(auth.ID, auth.RoleType)
	if err != nil {
		log.Printf("[AuthService] Register - %v", err)
		return nil, err
	}
	return &Login{ID: auth.ID, RoleType: auth.RoleType, Token: token}, nil
}

func (s *authService) generateToken(id int, role repository.AuthRole) (string, error) {
	claims := jwt.MapClaims{
		"sub":  fmt.Sprintf("%d", id),
		"role": string(role),
		"exp":  time.Now().Add(time.Duration(s.cfg.JWTExpiryMinutes) * time.Minute).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	return token, nil
}

func (s *authService) GetAuthIDFromToken(token *jwt.Token) (int, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, ErrInvalidToken
	}
	var id int
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
