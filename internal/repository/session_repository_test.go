package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extractor-web/internal/models"
)

func TestSessionRepositoryCreateGet(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	session := &models.ExtractSession{Code: "EXTRACT-abc123", CreatedAt: time.Now()}
	repo.Create(session)

	got, ok := repo.Get("EXTRACT-abc123")
	require.True(t, ok)
	assert.Equal(t, session, got)

	_, ok = repo.Get("EXTRACT-missing")
	assert.False(t, ok)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	repo.Create(&models.ExtractSession{Code: "EXTRACT-abc123", CreatedAt: time.Now()})

	repo.Delete("EXTRACT-abc123")

	_, ok := repo.Get("EXTRACT-abc123")
	assert.False(t, ok)
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(time.Minute)
	repo.Create(&models.ExtractSession{
		Code:      "EXTRACT-old",
		CreatedAt: time.Now().Add(-2 * time.Minute),
	})
	repo.Create(&models.ExtractSession{
		Code:      "EXTRACT-fresh",
		CreatedAt: time.Now(),
	})

	_, ok := repo.Get("EXTRACT-old")
	assert.False(t, ok)

	_, ok = repo.Get("EXTRACT-fresh")
	assert.True(t, ok)
}
