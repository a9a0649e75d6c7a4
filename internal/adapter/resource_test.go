package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/mission-planner/internal/mock"
	"github.com/MKhiriev/mission-planner/models"
)

var _ ServerAdapter = (*mock.MockServerAdapter)(nil)

func strPtr(s string) *string { return &s }

func TestResource_UsesEntitySegment(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)

	m.EXPECT().List(gomock.Any(), "risk-assessment").
		Return([]json.RawMessage{json.RawMessage(`{"id":1,"title":"Weather"}`), json.RawMessage(`{"id":2}`)}, nil)

	risks, err := NewResource[models.RiskAssessment](m).List(context.Background())

	require.NoError(t, err)
	require.Len(t, risks, 2)
	assert.Equal(t, int64(1), risks[0].ID)
	assert.Equal(t, int64(2), risks[1].ID)
}

func TestResource_CRUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	missions := NewResource[models.Mission](m)
	ctx := context.Background()

	input := &models.Mission{Name: strPtr("Alpha")}

	m.EXPECT().Create(ctx, "mission", input).Return(json.RawMessage(`{"id":3,"name":"Alpha"}`), nil)
	m.EXPECT().Get(ctx, "mission", int64(3)).Return(json.RawMessage(`{"id":3,"name":"Alpha"}`), nil)
	m.EXPECT().Update(ctx, "mission", int64(3), input).Return(json.RawMessage(`{"id":3,"name":"Bravo"}`), nil)
	m.EXPECT().Delete(ctx, "mission", int64(3)).Return(nil)

	created, err := missions.Create(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)

	got, err := missions.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", *got.Name)

	updated, err := missions.Update(ctx, 3, input)
	require.NoError(t, err)
	assert.Equal(t, "Bravo", *updated.Name)

	require.NoError(t, missions.Delete(ctx, 3))
}

func TestResource_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock.NewMockServerAdapter(ctrl)
	statuses := NewResource[models.MissionStatus](m)

	m.EXPECT().Get(gomock.Any(), "mission-status", int64(1)).Return(nil, ErrNotFound)
	m.EXPECT().Get(gomock.Any(), "mission-status", int64(2)).Return(json.RawMessage(`[]`), nil)

	_, err := statuses.Get(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = statuses.Get(context.Background(), 2)
	assert.ErrorContains(t, err, "decode mission-status")
}
