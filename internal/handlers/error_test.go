package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vaughan-dsouza/salesdesk/internal/apperr"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
	"github.com/vaughan-dsouza/salesdesk/internal/utils"
)

func TestFail_InternalErrorLogsCaller(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	req := httptest.NewRequest(http.MethodGet, "/sales", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), models.Identity{UserID: "user-1", Email: "a@b.c"}))
	rec := httptest.NewRecorder()

	fail(rec, req, log, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "user_id=user-1")
	assert.Contains(t, buf.String(), `error="db down"`)
}

func TestFail_AnonymousRequest(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	rec := httptest.NewRecorder()
	fail(rec, httptest.NewRequest(http.MethodPost, "/users/login", nil), log, errors.New("db down"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, buf.String(), "user_id")
}

func TestFail_ClientError(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	rec := httptest.NewRecorder()
	fail(rec, httptest.NewRequest(http.MethodGet, "/users", nil), log,
		apperr.Validation("Invalid filter", apperr.FieldError{Field: "price", Message: "must be a number"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid filter","errors":[{"field":"price","message":"must be a number"}]}`, rec.Body.String())
	assert.Empty(t, buf.String())
}
