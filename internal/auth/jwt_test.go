package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Tomasz2002/AI-project/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "a-long-and-secure-secret-key-for-tests"
const testUserID = "user-123"
const testRole = "user"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should have panicked with an empty JWT_SECRET, but did not.")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		duration := time.Minute * 5

		tokenStr, err := auth.GenerateJWT(testUserID, testRole, duration)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("Wrong UserID. Expected: %s, got: %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("Wrong role. Expected: %s, got: %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		duration := -time.Second * 1

		tokenStr, err := auth.GenerateJWT(testUserID, testRole, duration)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should have failed for an expired token, but passed.")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("Wrong error returned for expired token. Expected: %v, got: %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		os.Setenv("JWT_SECRET", "a-different-fake-secret-key")
		auth.Init()
		defer func() {
			os.Setenv("JWT_SECRET", testSecret)
			auth.Init()
		}()

		_, err = auth.ValidateJWT(tokenStr)

		if err == nil {
			t.Fatal("ValidateJWT should have failed for an invalid signature, but passed.")
		}
		if !errors.Is(err, jwt.ErrSignatureInvalid) {
			t.Errorf("Wrong error for invalid signature: %v", err)
		}
	})
}
