package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AdamBeresnev/table-tennis-app/internal/bracket"
	"github.com/AdamBeresnev/table-tennis-app/internal/scoring"
	"github.com/AdamBeresnev/table-tennis-app/internal/service"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	testCases := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: x", service.ErrPlayerNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: x", bracket.ErrUnknownMatch), http.StatusNotFound},
		{service.ErrDuplicatePlayer, http.StatusConflict},
		{bracket.ErrAlreadyResolved, http.StatusConflict},
		{scoring.ErrMatchDecided, http.StatusConflict},
		{fmt.Errorf("%w: match m1 is already completed", bracket.ErrInvalidResult), http.StatusBadRequest},
		{bracket.ErrInvalidEntrantCount, http.StatusBadRequest},
		{service.ErrSamePlayer, http.StatusBadRequest},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{fmt.Errorf("%w: disk on fire", service.ErrResultCommitted), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, "Failed", tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestRenderPage(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>ok</p>")
			return err
		})
		rec := httptest.NewRecorder()
		renderPage(rec, httptest.NewRequest(http.MethodGet, "/", nil), page)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<p>ok</p>", rec.Body.String())
	})

	t.Run("render failure", func(t *testing.T) {
		page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return errors.New("template exploded")
		})
		rec := httptest.NewRecorder()
		renderPage(rec, httptest.NewRequest(http.MethodGet, "/", nil), page)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal Server Error")
	})
}
