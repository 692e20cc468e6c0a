package templates

import (
	"strings"
	"testing"
)

func TestRenderer_Welcome(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, text, err := renderer.Render("welcome", WelcomeData{
		DisplayName: "Ana <3",
		Username:    "ana_pets",
		AppURL:      "https://app.pawz.example",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(html, "Ana &lt;3") {
		t.Errorf("expected escaped display name in html, got %q", html)
	}
	if !strings.Contains(text, "Welcome, Ana <3!") {
		t.Errorf("expected raw display name in text, got %q", text)
	}
	if !strings.Contains(text, "@ana_pets") {
		t.Errorf("expected username in text, got %q", text)
	}
}

func TestRenderer_PasswordReset(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, text, err := renderer.Render("password_reset", PasswordResetData{
		ResetURL:  "https://app.pawz.example/reset-password?token=abc",
		ExpiresIn: "1 hour",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(html, "Hi there,") || !strings.Contains(text, "Hi there,") {
		t.Error("expected fallback greeting when the name is empty")
	}
	if !strings.Contains(text, "token=abc") || !strings.Contains(text, "1 hour") {
		t.Errorf("unexpected text body %q", text)
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	if _, _, err := renderer.Render("group_invitation", nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}
