package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"obralink/internal/domain/entities"
	"obralink/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidLoginInput  = errors.New("invalid login input")
)

const tokenTTL = 72 * time.Hour

// IAuthUseCase authenticates accounts from the seeded credential list
// and issues the bearer tokens the rest of the API requires.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (entities.User, string, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	secret []byte
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, secret []byte) *AuthUseCase {
	return &AuthUseCase{users: users, secret: secret}
}

// Login verifies the password against the stored bcrypt hash and
// returns the account plus a signed HS256 token carrying user_id,
// role, jti and a 72h expiry. Unknown emails and bad passwords are
// indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidLoginInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.User{}, "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return entities.User{}, "", err
	}

	log.Printf("[auth][usecase] login ok user_id=%s role=%s", user.ID, user.Role)
	user.PasswordHash = ""
	return user, signed, nil
}
