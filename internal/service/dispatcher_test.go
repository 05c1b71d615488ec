package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/geo_tracking_system/internal/models"
	"github.com/shenikar/geo_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDispatcher(t *testing.T) (*SideEffectDispatcher, *mocks.MockAttendanceService) {
	ctrl := gomock.NewController(t)
	attendanceMock := mocks.NewMockAttendanceService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewSideEffectDispatcher(attendanceMock, logger), attendanceMock
}

func enterEvent(fenceID uuid.UUID) *models.GeoEvent {
	return &models.GeoEvent{
		UserID:     "user-1",
		GeofenceID: fenceID,
		Type:       models.GeoEventEnter,
		OccurredAt: time.Now(),
	}
}

func exitEvent(fenceID uuid.UUID) *models.GeoEvent {
	return &models.GeoEvent{
		UserID:     "user-1",
		GeofenceID: fenceID,
		Type:       models.GeoEventExit,
		OccurredAt: time.Now(),
	}
}

func TestDispatch_Enter_AutoClockIn(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID, AutoClockIn: true}

	attendanceMock.EXPECT().HasOpenSession(ctx, "user-1").Return(false, nil).Times(1)
	attendanceMock.EXPECT().OpenSession(ctx, "user-1", fenceID).Return(nil).Times(1)

	res := dispatcher.Dispatch(ctx, enterEvent(fenceID), fence)

	require.NoError(t, res.Err)
	assert.True(t, res.Applied)
}

func TestDispatch_Enter_SessionAlreadyOpen_Idempotent(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID, AutoClockIn: true}

	attendanceMock.EXPECT().HasOpenSession(ctx, "user-1").Return(true, nil).Times(1)
	// Повторная отметка не выполняется
	attendanceMock.EXPECT().OpenSession(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	res := dispatcher.Dispatch(ctx, enterEvent(fenceID), fence)

	require.NoError(t, res.Err)
	assert.False(t, res.Applied)
}

func TestDispatch_Enter_FenceWithoutAutoClockIn_NoOp(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID}

	attendanceMock.EXPECT().HasOpenSession(gomock.Any(), gomock.Any()).Times(0)

	res := dispatcher.Dispatch(ctx, enterEvent(fenceID), fence)

	require.NoError(t, res.Err)
	assert.False(t, res.Applied)
}

func TestDispatch_Exit_AutoClockOut(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID, AutoClockOut: true}

	attendanceMock.EXPECT().HasOpenSession(ctx, "user-1").Return(true, nil).Times(1)
	attendanceMock.EXPECT().CloseSession(ctx, "user-1").Return(nil).Times(1)

	res := dispatcher.Dispatch(ctx, exitEvent(fenceID), fence)

	require.NoError(t, res.Err)
	assert.True(t, res.Applied)
}

func TestDispatch_Exit_NoOpenSession_NoOp(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID, AutoClockOut: true}

	attendanceMock.EXPECT().HasOpenSession(ctx, "user-1").Return(false, nil).Times(1)
	attendanceMock.EXPECT().CloseSession(gomock.Any(), gomock.Any()).Times(0)

	res := dispatcher.Dispatch(ctx, exitEvent(fenceID), fence)

	require.NoError(t, res.Err)
	assert.False(t, res.Applied)
}

func TestDispatch_AttendanceError_Surfaced(t *testing.T) {
	dispatcher, attendanceMock := newTestDispatcher(t)
	ctx := context.Background()
	fenceID := uuid.New()
	fence := &models.Geofence{ID: fenceID, AutoClockIn: true}
	attErr := fmt.Errorf("сервис отметок недоступен")

	attendanceMock.EXPECT().HasOpenSession(ctx, "user-1").Return(false, attErr).Times(1)

	res := dispatcher.Dispatch(ctx, enterEvent(fenceID), fence)

	require.Error(t, res.Err)
	assert.False(t, res.Applied)
}
