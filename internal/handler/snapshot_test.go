package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingBot_Go/internal/catalog"
	"github.com/osse101/FishingBot_Go/internal/domain"
)

func TestHandleExport(t *testing.T) {
	h, svc, _ := newTestHandler(t)
	data := []byte(`{"p1": {}}`)
	svc.On("Export", mock.Anything, "p1").Return(data, nil)

	req := withPlayerID(httptest.NewRequest(http.MethodGet, "/", nil), "p1")
	w := httptest.NewRecorder()
	h.HandleExport(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(data), w.Body.String())
	assert.Equal(t, `attachment; filename="fishing_data_p1.json"`, w.Header().Get("Content-Disposition"))
}

func TestHandleImport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "loaded", wantStatus: http.StatusOK, wantBody: MsgSaveImported},
		{name: "not json", err: domain.ErrMalformedSnapshot, wantStatus: http.StatusBadRequest, wantBody: domain.ErrMsgMalformedSnapshot},
		{name: "other player", err: domain.ErrSnapshotMissingPlayer, wantStatus: http.StatusBadRequest, wantBody: domain.ErrMsgSnapshotMissingPlayer},
		{
			name:       "incomplete",
			err:        fmt.Errorf("%w: money is missing", domain.ErrSnapshotIncomplete),
			wantStatus: http.StatusBadRequest,
			wantBody:   "money is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t)
			body := `{"p1":{"money":5}}`
			var p *domain.Player
			if tt.err == nil {
				p = domain.NewPlayer("p1", catalog.ItemBasicRod)
			}
			svc.On("Import", mock.Anything, "p1", []byte(body)).Return(p, tt.err)

			req := withPlayerID(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), "p1")
			w := httptest.NewRecorder()
			h.HandleImport(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleImport_TooLarge(t *testing.T) {
	h, svc, _ := newTestHandler(t)

	req := withPlayerID(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))), "p1")
	w := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(w, req.Body, 16)
	h.HandleImport(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	svc.AssertNotCalled(t, "Import", mock.Anything, mock.Anything, mock.Anything)
}
