package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T, setup func(*gin.Engine)) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	setup(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestGetDecodesEnvelope(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/products", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "data": []gin.H{{"id": "p1", "name": "Latte"}}})
		})
	})

	client := New(server.URL, nil)

	var out struct {
		Status string `json:"status"`
		Data   []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := client.Get(context.Background(), "/products", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].ID != "p1" {
		t.Fatalf("decoded %+v", out)
	}
}

func TestBearerInjection(t *testing.T) {
	var gotAuth string
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/orders", func(c *gin.Context) {
			gotAuth = c.GetHeader("Authorization")
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	})

	t.Run("with token", func(t *testing.T) {
		client := New(server.URL, func() string { return "tok123" })
		if err := client.Get(context.Background(), "/orders", nil); err != nil {
			t.Fatalf("get: %v", err)
		}
		if gotAuth != "Bearer tok123" {
			t.Fatalf("Authorization header %q", gotAuth)
		}
	})

	t.Run("anonymous", func(t *testing.T) {
		client := New(server.URL, func() string { return "" })
		if err := client.Get(context.Background(), "/orders", nil); err != nil {
			t.Fatalf("get: %v", err)
		}
		if gotAuth != "" {
			t.Fatalf("unexpected Authorization header %q", gotAuth)
		}
	})
}

func TestErrorUnwrapsServerMessage(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/orders", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "restaurant is closed"})
		})
		r.GET("/boom", func(c *gin.Context) {
			c.Data(http.StatusInternalServerError, "text/html", []byte("<html>oops</html>"))
		})
		r.GET("/private", func(c *gin.Context) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "token expired"})
		})
	})
	client := New(server.URL, nil)

	t.Run("server message", func(t *testing.T) {
		err := client.Post(context.Background(), "/orders", gin.H{}, nil)
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if apiErr.Status != http.StatusUnprocessableEntity || apiErr.Message != "restaurant is closed" {
			t.Fatalf("got %+v", apiErr)
		}
	})

	t.Run("fallback to status text", func(t *testing.T) {
		err := client.Get(context.Background(), "/boom", nil)
		var apiErr *Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *Error, got %v", err)
		}
		if apiErr.Message != http.StatusText(http.StatusInternalServerError) {
			t.Fatalf("got message %q", apiErr.Message)
		}
	})

	t.Run("401 matches ErrUnauthorized", func(t *testing.T) {
		err := client.Get(context.Background(), "/private", nil)
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized match, got %v", err)
		}
	})
}

func TestPostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody struct {
		Email string `json:"email"`
	}
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/auth/login", func(c *gin.Context) {
			gotContentType = c.ContentType()
			c.BindJSON(&gotBody)
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	})

	client := New(server.URL, nil)
	body := map[string]string{"email": "a@b.c", "password": "pw"}
	if err := client.Post(context.Background(), "/auth/login", body, nil); err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type %q", gotContentType)
	}
	if gotBody.Email != "a@b.c" {
		t.Fatalf("body %+v", gotBody)
	}
}

func TestUploadMultipart(t *testing.T) {
	var gotFilename, gotContent string
	server := newTestServer(t, func(r *gin.Engine) {
		r.POST("/auth/profile/photo", func(c *gin.Context) {
			file, err := c.FormFile("photo")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
				return
			}
			gotFilename = file.Filename
			f, _ := file.Open()
			defer f.Close()
			content, _ := io.ReadAll(f)
			gotContent = string(content)
			c.JSON(http.StatusOK, gin.H{"status": "success"})
		})
	})

	client := New(server.URL, nil)
	err := client.Upload(context.Background(), "/auth/profile/photo", "photo", "me.png", strings.NewReader("fake-png"), nil)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if gotFilename != "me.png" || gotContent != "fake-png" {
		t.Fatalf("got %q / %q", gotFilename, gotContent)
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	server := newTestServer(t, func(r *gin.Engine) {
		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	})

	client := New(server.URL+"/", nil)
	if err := client.Get(context.Background(), "/health", nil); err != nil {
		t.Fatalf("get with trailing slash base: %v", err)
	}
}
