package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"restaurant-client/api"
	"restaurant-client/repositories"
	"restaurant-client/storage"
)

func signedToken(t *testing.T, userID, email, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newAuthFixture(t *testing.T, setup func(*gin.Engine)) (*AuthService, *repositories.TokenRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	setup(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	tokens := repositories.NewTokenRepository(storage.NewMemoryStore())
	client := api.New(server.URL, tokens.Token)
	return NewAuthService(client, tokens), tokens
}

func TestLoginStoresToken(t *testing.T) {
	token := ""
	svc, tokens := newAuthFixture(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(c *gin.Context) {
			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			c.BindJSON(&req)
			if req.Password != "secret" {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"token": token,
				"user":  gin.H{"id": "u1", "email": req.Email, "role": "client"},
			})
		})
	})
	token = signedToken(t, "u1", "a@b.c", "client", time.Now().Add(time.Hour))

	user, err := svc.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Email != "a@b.c" || user.Role != "client" {
		t.Fatalf("user %+v", user)
	}
	if tokens.Token() == "" {
		t.Fatal("token not stored")
	}
	if !svc.IsAuthenticated() {
		t.Fatal("session not authenticated after login")
	}

	current, err := svc.CurrentUser()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if current.ID != "u1" || current.Role != "client" {
		t.Fatalf("claims %+v", current)
	}
}

func TestLoginFailureDoesNotStoreToken(t *testing.T) {
	svc, tokens := newAuthFixture(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid email or password"})
		})
	})

	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if tokens.Token() != "" {
		t.Fatal("failed login stored a token")
	}
}

func TestExpiredTokenIsNotAuthenticated(t *testing.T) {
	svc, tokens := newAuthFixture(t, func(r *gin.Engine) {})

	tokens.Store(signedToken(t, "u1", "a@b.c", "client", time.Now().Add(-time.Minute)))

	if svc.IsAuthenticated() {
		t.Fatal("expired token treated as live")
	}
	if _, err := svc.CurrentUser(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestLogoutClearsTokenEvenWhenServerFails(t *testing.T) {
	svc, tokens := newAuthFixture(t, func(r *gin.Engine) {
		r.POST("/auth/logout", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "boom"})
		})
	})
	tokens.Store(signedToken(t, "u1", "a@b.c", "client", time.Now().Add(time.Hour)))

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if tokens.Token() != "" {
		t.Fatal("token survived logout")
	}
}

func TestRefreshReplacesToken(t *testing.T) {
	fresh := ""
	svc, tokens := newAuthFixture(t, func(r *gin.Engine) {
		r.POST("/auth/refresh", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"token": fresh})
		})
	})
	fresh = signedToken(t, "u1", "a@b.c", "client", time.Now().Add(2*time.Hour))
	tokens.Store(signedToken(t, "u1", "a@b.c", "client", time.Now().Add(time.Minute)))

	if err := svc.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if tokens.Token() != fresh {
		t.Fatal("token not replaced")
	}
}
