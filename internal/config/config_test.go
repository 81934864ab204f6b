package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "local", cfg.Identity.Provider)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, 7*24*time.Hour, cfg.InvitationTTL)
	assert.Equal(t, 5*time.Minute, cfg.CatalogTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SITE_URL", "https://app.example.com/")
	t.Setenv("INVITATION_TTL", "48h")
	t.Setenv("EMAIL_PROVIDER", "SMTP")
	t.Setenv("SMTP_HOST", "mail.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "https://app.example.com", cfg.SiteURL)
	assert.Equal(t, 48*time.Hour, cfg.InvitationTTL)
	assert.Equal(t, "smtp", cfg.Email.Provider)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "supabase without key",
			env:     map[string]string{"IDENTITY_PROVIDER": "supabase", "SUPABASE_URL": "https://x.supabase.co"},
			wantErr: "SUPABASE_SERVICE_KEY",
		},
		{
			name:    "unknown identity provider",
			env:     map[string]string{"IDENTITY_PROVIDER": "ldap"},
			wantErr: "unknown identity provider",
		},
		{
			name:    "sendgrid without api key",
			env:     map[string]string{"EMAIL_PROVIDER": "sendgrid"},
			wantErr: "SENDGRID_API_KEY",
		},
		{
			name:    "non-positive invitation ttl",
			env:     map[string]string{"INVITATION_TTL": "0s"},
			wantErr: "invitation ttl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
