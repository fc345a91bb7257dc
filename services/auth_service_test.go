package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/AtifZafar596/Jetak-food-backend-api/entity"
	"github.com/AtifZafar596/Jetak-food-backend-api/pkg/apperr"
	"github.com/AtifZafar596/Jetak-food-backend-api/repository"
	"github.com/AtifZafar596/Jetak-food-backend-api/store"
	"github.com/AtifZafar596/Jetak-food-backend-api/utils"
)

// capturedSMS records outgoing messages so tests can read the code back.
type capturedSMS struct {
	phone   string
	message string
}

func (c *capturedSMS) Send(_ context.Context, phone, message string) error {
	c.phone = phone
	c.message = message
	return nil
}

func (c *capturedSMS) code() string {
	fields := strings.Fields(c.message)
	return fields[len(fields)-1]
}

func newAuthService(t *testing.T) (*AuthService, *capturedSMS) {
	t.Helper()
	db := newTestDB(t)
	sms := &capturedSMS{}
	svc := NewAuthService(
		repository.NewUserRepository(db),
		store.NewMemory(),
		sms,
		"test-secret",
		time.Hour,
		5*time.Minute,
	)
	return svc, sms
}

func TestOTPFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("request then verify creates the user and issues a token", func(t *testing.T) {
		svc, sms := newAuthService(t)

		if err := svc.RequestCode(ctx, "+15551234567"); err != nil {
			t.Fatalf("request: %v", err)
		}
		if sms.phone != "+15551234567" {
			t.Errorf("sms sent to %q", sms.phone)
		}
		if len(sms.code()) != 6 {
			t.Errorf("code %q is not 6 digits", sms.code())
		}

		token, user, err := svc.VerifyCode(ctx, "+15551234567", sms.code())
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if user.Phone != "+15551234567" || user.Role != "customer" {
			t.Errorf("user = %+v", user)
		}

		claims, err := utils.ParseToken(token, "test-secret")
		if err != nil {
			t.Fatalf("parse token: %v", err)
		}
		if claims.UserID != user.ID || claims.Role != "customer" {
			t.Errorf("claims = %+v", claims)
		}
		if claims.ID == "" {
			t.Error("token has no jti; logout cannot blacklist it")
		}
	})

	t.Run("codes are single use", func(t *testing.T) {
		svc, sms := newAuthService(t)

		if err := svc.RequestCode(ctx, "+15551234567"); err != nil {
			t.Fatalf("request: %v", err)
		}
		code := sms.code()
		if _, _, err := svc.VerifyCode(ctx, "+15551234567", code); err != nil {
			t.Fatalf("first verify: %v", err)
		}
		if _, _, err := svc.VerifyCode(ctx, "+15551234567", code); !apperr.IsValidation(err) {
			t.Errorf("second verify: err = %v, want ValidationError", err)
		}
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		svc, sms := newAuthService(t)

		if err := svc.RequestCode(ctx, "+15551234567"); err != nil {
			t.Fatalf("request: %v", err)
		}
		wrong := "000000"
		if wrong == sms.code() {
			wrong = "000001"
		}
		if _, _, err := svc.VerifyCode(ctx, "+15551234567", wrong); !apperr.IsValidation(err) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})

	t.Run("verify without a requested code fails", func(t *testing.T) {
		svc, _ := newAuthService(t)
		if _, _, err := svc.VerifyCode(ctx, "+15551234567", "123456"); !apperr.IsValidation(err) {
			t.Errorf("err = %v, want ValidationError", err)
		}
	})

	t.Run("malformed phone numbers are rejected", func(t *testing.T) {
		svc, _ := newAuthService(t)
		for _, phone := range []string{"", "abc", "+1", "12345678901234567890"} {
			if err := svc.RequestCode(ctx, phone); !apperr.IsValidation(err) {
				t.Errorf("phone %q: err = %v, want ValidationError", phone, err)
			}
		}
	})

	t.Run("second login reuses the account", func(t *testing.T) {
		svc, sms := newAuthService(t)

		svc.RequestCode(ctx, "+15551234567")
		_, first, err := svc.VerifyCode(ctx, "+15551234567", sms.code())
		if err != nil {
			t.Fatalf("first login: %v", err)
		}

		svc.RequestCode(ctx, "+15551234567")
		_, second, err := svc.VerifyCode(ctx, "+15551234567", sms.code())
		if err != nil {
			t.Fatalf("second login: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("got a new user %d on second login, want %d", second.ID, first.ID)
		}
	})
}

func TestAdminLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	admin := entity.User{Phone: "+15550009999", Role: "admin", Password: string(hashed)}
	if err := svc.Users.DB.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		token, user, err := svc.AdminLogin("+15550009999", "s3cret")
		if err != nil {
			t.Fatalf("login: %v", err)
		}
		if user.Role != "admin" || token == "" {
			t.Errorf("user role = %q, token empty = %v", user.Role, token == "")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, _, err := svc.AdminLogin("+15550009999", "nope"); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("customer accounts cannot use password login", func(t *testing.T) {
		customer := entity.User{Phone: "+15550008888", Role: "customer", Password: string(hashed)}
		if err := svc.Users.DB.Create(&customer).Error; err != nil {
			t.Fatalf("seed customer: %v", err)
		}
		if _, _, err := svc.AdminLogin("+15550008888", "s3cret"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestLogoutBlacklistsToken(t *testing.T) {
	ctx := context.Background()
	svc, sms := newAuthService(t)

	svc.RequestCode(ctx, "+15551234567")
	token, _, err := svc.VerifyCode(ctx, "+15551234567", sms.code())
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := utils.ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := svc.Logout(ctx, claims.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.KV.Get(ctx, "blacklist:"+claims.ID); err != nil {
		t.Errorf("token id not blacklisted: %v", err)
	}
}
