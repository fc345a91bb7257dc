package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/notify"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
	"github.com/AtifZafar596/Jetak-food-backend-api/store"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// AuthService handles phone-OTP login, admin password login and logout.
// OTP codes and revoked token ids live in the TTL store, never in process
// memory, so any replica can verify a code another replica issued.
type AuthService struct {
	Users *repository.UserRepository
	KV    store.KV
	SMS   notify.Sender

	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, kv store.KV, sms notify.Sender, secret string, jwtTTL, otpTTL time.Duration) *AuthService {
	return &AuthService{
		Users:     users,
		KV:        kv,
		SMS:       sms,
		jwtSecret: secret,
		jwtTTL:    jwtTTL,
		otpTTL:    otpTTL,
	}
}

func otpKey(phone string) string { return "otp:" + phone }

// RequestCode generates a 6-digit code, stores it with expiry and hands it
// to the SMS collaborator.
func (s *AuthService) RequestCode(ctx context.Context, phone string) error {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return apperr.Validation("phone", "must be a phone number in international format")
	}

	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.KV.Set(ctx, otpKey(phone), code, s.otpTTL); err != nil {
		return apperr.Storage("otp store", err)
	}

	msg := fmt.Sprintf("Your Jetak verification code is %s", code)
	return s.SMS.Send(ctx, phone, msg)
}

// VerifyCode checks the code, consumes it and issues a JWT. The first login
// for an unknown phone creates the customer account.
func (s *AuthService) VerifyCode(ctx context.Context, phone, code string) (string, *entity.User, error) {
	phone = strings.TrimSpace(phone)
	if !phonePattern.MatchString(phone) {
		return "", nil, apperr.Validation("phone", "must be a phone number in international format")
	}
	if code == "" {
		return "", nil, apperr.Validation("code", "required")
	}

	stored, err := s.KV.Get(ctx, otpKey(phone))
	if err == store.ErrNotFound {
		return "", nil, apperr.Validation("code", "expired or never requested")
	}
	if err != nil {
		return "", nil, apperr.Storage("otp store", err)
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return "", nil, apperr.Validation("code", "incorrect code")
	}
	// single use
	if err := s.KV.Delete(ctx, otpKey(phone)); err != nil {
		return "", nil, apperr.Storage("otp store", err)
	}

	user, err := s.Users.FindOrCreateByPhone(phone)
	if err != nil {
		return "", nil, apperr.Storage("user lookup", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// AdminLogin authenticates a seeded admin account with phone and password.
func (s *AuthService) AdminLogin(phone, password string) (string, *entity.User, error) {
	user, err := s.Users.FindByPhone(strings.TrimSpace(phone))
	if err != nil || user.Role != "admin" {
		return "", nil, apperr.Validation("credentials", "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, apperr.Validation("credentials", "invalid credentials")
	}
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout blacklists the token id for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}
	return s.KV.Set(ctx, "blacklist:"+tokenID, "1", s.jwtTTL)
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("user", userID)
	}
	if err != nil {
		return nil, apperr.Storage("user lookup", err)
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.Users.Update(userID, updates); err != nil {
		return nil, apperr.Storage("user update", err)
	}
	return s.GetProfile(userID)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
