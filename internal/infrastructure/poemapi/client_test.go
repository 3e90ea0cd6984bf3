package poemapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tesso57/poemgen/internal/domain/poem"
)

func TestClient_Generate(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"poem":"leaves fall slow...","theme":"autumn","style":"haiku","mood":"neutral"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL + "/"})
	got, err := client.Generate(context.Background(), poem.Request{
		Theme:  "autumn",
		Style:  poem.Haiku,
		Mood:   poem.Neutral,
		Length: poem.Short,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/api/generate-poem" {
		t.Fatalf("path = %q, want /api/generate-poem", gotPath)
	}
	if gotContentType != "application/json" {
		t.Fatalf("content type = %q, want application/json", gotContentType)
	}
	want := map[string]string{"theme": "autumn", "style": "haiku", "mood": "neutral", "length": "short"}
	if len(gotBody) != len(want) {
		t.Fatalf("body = %#v, want %#v", gotBody, want)
	}
	for k, v := range want {
		if gotBody[k] != v {
			t.Fatalf("body[%q] = %q, want %q", k, gotBody[k], v)
		}
	}

	if !got.Success || got.Poem != "leaves fall slow..." {
		t.Fatalf("response = %#v", got)
	}
	if got.Theme != "autumn" || got.Style != "haiku" {
		t.Fatalf("echoed fields = %#v", got)
	}
}

func TestClient_GenerateApplicationFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"theme too abstract"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	got, err := client.Generate(context.Background(), poem.Request{Theme: "x"})
	if err != nil {
		t.Fatalf("Generate() error = %v, success=false should not be a transport error", err)
	}
	if got.Success || got.Error != "theme too abstract" || got.Poem != "" {
		t.Fatalf("response = %#v", got)
	}
}

func TestClient_GenerateStatusError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "error field", status: http.StatusInternalServerError, body: `{"success":false,"error":"model overloaded"}`, wantMessage: "model overloaded"},
		{name: "detail field", status: http.StatusUnprocessableEntity, body: `{"detail":"invalid style"}`, wantMessage: "invalid style"},
		{name: "structured detail", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body","theme"]}]}`, wantMessage: ""},
		{name: "plain text", status: http.StatusBadGateway, body: "bad gateway", wantMessage: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL})
			_, err := client.Generate(context.Background(), poem.Request{Theme: "x"})
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error = %v, want *StatusError", err)
			}
			if statusErr.StatusCode != tt.status {
				t.Fatalf("StatusCode = %d, want %d", statusErr.StatusCode, tt.status)
			}
			if statusErr.Message != tt.wantMessage {
				t.Fatalf("Message = %q, want %q", statusErr.Message, tt.wantMessage)
			}
			if !strings.Contains(statusErr.Error(), "status") {
				t.Fatalf("Error() = %q, should mention status", statusErr.Error())
			}
		})
	}
}

func TestClient_GenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{BaseURL: baseURL})
	_, err := client.Generate(context.Background(), poem.Request{Theme: "x"})
	if err == nil {
		t.Fatal("expected transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("error = %v, transport failure should not be a StatusError", err)
	}
}

func TestClient_GenerateInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	if _, err := client.Generate(context.Background(), poem.Request{Theme: "x"}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestClient_GenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond})
	if _, err := client.Generate(context.Background(), poem.Request{Theme: "x"}); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestClient_Health(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"Hello World"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	msg, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health() error = %v", err)
	}
	if gotPath != "/api/" {
		t.Fatalf("path = %q, want /api/", gotPath)
	}
	if msg != "Hello World" {
		t.Fatalf("message = %q, want %q", msg, "Hello World")
	}
}

func TestClient_HealthStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	_, err := client.Health(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("Health() error = %v, want 503 StatusError", err)
	}
}

func TestNewClientWithHTTP_TrimsBaseURL(t *testing.T) {
	client := NewClientWithHTTP(Config{BaseURL: " http://localhost:8000/ "}, nil)
	if client.BaseURL() != "http://localhost:8000" {
		t.Fatalf("BaseURL() = %q", client.BaseURL())
	}
}
