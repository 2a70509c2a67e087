package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sweetloaf/bakeshop/services/feedback/internal/models"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/repo"
	"github.com/sweetloaf/bakeshop/services/feedback/internal/service"
)

func newTestHandler(t *testing.T) *FeedbackHTTP {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FeedbackEntry{}))

	return &FeedbackHTTP{Svc: &service.FeedbackService{Repo: &repo.GormRepo{DB: db}}}
}

func doJSONRequest(t *testing.T, h echo.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h(c))
	return rec
}

func TestSubmitFeedback(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	rec := doJSONRequest(t, h.Submit, http.MethodPost, "/feedback", map[string]any{
		"name":    "Ana",
		"rating":  5,
		"comment": "Great!",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var entry models.FeedbackEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "Ana", entry.Name)
	assert.Equal(t, 5, entry.Rating)
	assert.Equal(t, "Great!", entry.Comment)

	listRec := doJSONRequest(t, h.List, http.MethodGet, "/feedback", nil)
	require.Equal(t, http.StatusOK, listRec.Code)

	var entries []models.FeedbackEntry
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
}

func TestSubmitFeedback_RejectsInvalidRating(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	for _, rating := range []int{0, 6, -1} {
		rec := doJSONRequest(t, h.Submit, http.MethodPost, "/feedback", map[string]any{
			"name":    "Ana",
			"rating":  rating,
			"comment": "Great!",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %d", rating)
	}

	listRec := doJSONRequest(t, h.List, http.MethodGet, "/feedback", nil)
	var entries []models.FeedbackEntry
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &entries))
	assert.Empty(t, entries)
}

func TestListFeedback_LimitQueryParam(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	for i := 0; i < 8; i++ {
		rec := doJSONRequest(t, h.Submit, http.MethodPost, "/feedback", map[string]any{
			"name":    "Ana",
			"rating":  4,
			"comment": "yum",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSONRequest(t, h.List, http.MethodGet, "/feedback?limit=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var entries []models.FeedbackEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	assert.Len(t, entries, 3)
}
