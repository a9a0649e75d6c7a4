// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mission-planner/internal/app"
	"github.com/MKhiriev/mission-planner/internal/service"
	"github.com/MKhiriev/mission-planner/internal/store"
	"github.com/MKhiriev/mission-planner/models"
)

func strPtr(s string) *string { return &s }

func TestEntity_CreateEmptyMission(t *testing.T) {
	router, mocks := newRouterUnderTest(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mocks.missions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *models.Mission) (*models.Mission, error) {
			assert.Nil(t, m.Name)
			m.ID = 1
			m.CreatedAt = now
			m.UpdatedAt = now
			return m, nil
		},
	)

	rr := do(t, router, http.MethodPost, "/api/v1/mission", userToken, `{}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "2026-03-01T12:00:00Z", body["createdAt"])
	assert.Equal(t, "2026-03-01T12:00:00Z", body["updatedAt"])
	assert.NotContains(t, body, "deletedAt")
}

func TestEntity_GetByID(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().Get(gomock.Any(), int64(1)).
		Return(&models.Mission{Audit: models.Audit{ID: 1}, Name: strPtr("Alpha")}, nil)

	rr := do(t, router, http.MethodGet, "/api/v1/mission/1", userToken, "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Mission
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Alpha", *got.Name)
}

func TestEntity_GetNotFound_NoBody(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().Get(gomock.Any(), int64(2)).
		Return(nil, fmt.Errorf("%w: mission 2", service.ErrNotFound))

	rr := do(t, router, http.MethodGet, "/api/v1/mission/2", userToken, "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestEntity_InvalidID(t *testing.T) {
	router, _ := newRouterUnderTest(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := do(t, router, method, "/api/v1/mission/abc", userToken, `{}`)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestEntity_MalformedJSON(t *testing.T) {
	router, _ := newRouterUnderTest(t)

	rr := do(t, router, http.MethodPost, "/api/v1/mission", userToken, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, http.MethodPut, "/api/v1/mission/3", userToken, `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, router, http.MethodPost, "/api/v1/mission", userToken, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestEntity_Update(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, m *models.Mission) (*models.Mission, error) {
			assert.Equal(t, "Renamed", *m.Name)
			m.ID = id
			return m, nil
		},
	)

	rr := do(t, router, http.MethodPut, "/api/v1/mission/3", userToken, `{"name":"Renamed"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":3`)
}

func TestEntity_UpdateMissing(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().Update(gomock.Any(), int64(9), gomock.Any()).
		Return(nil, fmt.Errorf("%w: mission 9", service.ErrNotFound))

	rr := do(t, router, http.MethodPut, "/api/v1/mission/9", userToken, `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEntity_Delete(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	rr := do(t, router, http.MethodDelete, "/api/v1/mission/5", userToken, "")

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestEntity_ListEmpty(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().List(gomock.Any()).Return(nil, nil)

	rr := do(t, router, http.MethodGet, "/api/v1/mission", userToken, "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestEntity_ListOtherKind(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.intelligence.EXPECT().List(gomock.Any()).Return([]*models.Intelligence{
		{Audit: models.Audit{ID: 1}, Title: strPtr("Recon")},
		{Audit: models.Audit{ID: 2}},
	}, nil)

	rr := do(t, router, http.MethodGet, "/api/v1/intelligence", userToken, "")

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Intelligence
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Recon", *got[0].Title)
	assert.Nil(t, got[1].Title)
}

func TestEntity_StorageFailure(t *testing.T) {
	router, mocks := newRouterUnderTest(t)

	mocks.missions.EXPECT().List(gomock.Any()).Return(nil, fmt.Errorf("list mission: %w", store.ErrExecutingQuery))

	rr := do(t, router, http.MethodGet, "/api/v1/mission", userToken, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, app.MsgInternalServerError+"\n", rr.Body.String())
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: x", ErrInvalidID), http.StatusBadRequest},
		{fmt.Errorf("%w: x", ErrInvalidJSON), http.StatusBadRequest},
		{fmt.Errorf("%w: mission 1", service.ErrNotFound), http.StatusNotFound},
		{service.ErrUserAlreadyExists, http.StatusConflict},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrUserNotFound, http.StatusUnauthorized},
		{fmt.Errorf("%w: down", service.ErrDatabaseUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("wrapped: %w", store.ErrScanningRows), http.StatusInternalServerError},
		{fmt.Errorf("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestMessageFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		want   string
	}{
		{fmt.Errorf("%w: x", ErrInvalidID), http.StatusBadRequest, app.MsgInvalidID},
		{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{service.ErrUserNotFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
		{fmt.Errorf("%w: down", service.ErrDatabaseUnavailable), http.StatusServiceUnavailable, app.MsgDatabaseUnavailable},
		{fmt.Errorf("wrapped: %w", store.ErrScanningRows), http.StatusInternalServerError, app.MsgInternalServerError},
		{fmt.Errorf("teapot"), http.StatusTeapot, http.StatusText(http.StatusTeapot)},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, messageFromError(tt.err, tt.status))
		})
	}
}
