package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderActivationEmailTemplate(t *testing.T) {
	svc := NewService("smtp.example.com", "587", "user", "pass", "noreply@example.com", "https://threaddit.example.com")

	link := "https://threaddit.example.com/api/auth/accountVerification/abc-123"
	body, err := svc.renderActivationEmailTemplate(link)
	require.NoError(t, err)

	assert.Contains(t, body, link)
	assert.Contains(t, body, "Activate your account")
	assert.True(t, strings.Contains(body, "<html>"), "body should be HTML")
}

func TestActivationLinkFormat(t *testing.T) {
	// The token rides as a path segment of the verification endpoint, the
	// same route the HTTP layer serves.
	svc := NewService("smtp.example.com", "587", "user", "pass", "noreply@example.com", "https://threaddit.example.com")

	body, err := svc.renderActivationEmailTemplate("https://threaddit.example.com/api/auth/accountVerification/tok")
	require.NoError(t, err)
	assert.Contains(t, body, "/api/auth/accountVerification/tok")
}
