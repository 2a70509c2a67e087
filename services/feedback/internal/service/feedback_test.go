package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/feedback/internal/models"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/repo"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/transport"
)

func newTestService(t *testing.T) *FeedbackService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.FeedbackEntry{}))

	return &FeedbackService{Repo: &repo.GormRepo{DB: db}}
}

func TestFeedbackService_Submit(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, transport.SubmitFeedbackRequest{
		Name:    "Ana",
		Rating:  5,
		Comment: "Great!",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", entry.Name)
	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, "Great!", entry.Comment)

	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entry.ID, list[0].ID)
}

func TestFeedbackService_Submit_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.SubmitFeedbackRequest
	}{
		{name: "missing name", req: transport.SubmitFeedbackRequest{Rating: 4, Comment: "fine"}},
		{name: "blank name", req: transport.SubmitFeedbackRequest{Name: "   ", Rating: 4, Comment: "fine"}},
		{name: "missing comment", req: transport.SubmitFeedbackRequest{Name: "Ana", Rating: 4}},
		{name: "rating below range", req: transport.SubmitFeedbackRequest{Name: "Ana", Rating: 0, Comment: "fine"}},
		{name: "rating above range", req: transport.SubmitFeedbackRequest{Name: "Ana", Rating: 6, Comment: "fine"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			entry, err := svc.Submit(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, entry)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing invalid ever lands in the log.
	list, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFeedbackService_Submit_TrimsFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	entry, err := svc.Submit(ctx, transport.SubmitFeedbackRequest{
		Name:    "  Ana  ",
		Email:   " ana@example.com ",
		Rating:  4,
		Comment: "  lovely croissants  ",
		Product: " Croissant ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", entry.Name)
	assert.Equal(t, "ana@example.com", entry.Email)
	assert.Equal(t, "lovely croissants", entry.Comment)
	assert.Equal(t, "Croissant", entry.Product)
}

func TestFeedbackService_List_NewestFirstWithLimit(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		entry := models.FeedbackEntry{
			Name:      fmt.Sprintf("customer-%d", i),
			Rating:    5,
			Comment:   "yum",
			CreatedAt: time.Date(2026, time.March, 1+i, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, svc.Repo.DB.Create(&entry).Error)
	}

	t.Run("default limit is six, newest first", func(t *testing.T) {
		list, err := svc.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, list, DefaultListLimit)
		assert.Equal(t, "customer-9", list[0].Name)
		assert.Equal(t, "customer-4", list[len(list)-1].Name)
	})

	t.Run("explicit limit", func(t *testing.T) {
		list, err := svc.List(ctx, 3)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "customer-9", list[0].Name)
	})

	t.Run("limit is capped", func(t *testing.T) {
		list, err := svc.List(ctx, 1000)
		require.NoError(t, err)
		assert.Len(t, list, 10)
	})
}
