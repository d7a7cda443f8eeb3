package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-registration-service/internal/registry"
	"activity-registration-service/internal/service"
)

func newService(t *testing.T) *service.ActivityService {
	t.Helper()

	reg, err := registry.New(registry.DefaultActivities())
	require.NoError(t, err)
	return service.NewActivityService(reg)
}

func TestActivityService_ListActivities(t *testing.T) {
	svc := newService(t)

	views := svc.ListActivities(context.Background())

	require.Contains(t, views, "Chess Club")
	assert.Contains(t, views["Chess Club"].Participants, "michael@mergington.edu")
}

func TestActivityService_Enroll(t *testing.T) {
	tests := []struct {
		name       string
		activity   string
		email      string
		wantMsg    string
		wantCode   string
		wantStatus int
	}{
		{
			name:     "success",
			activity: "Tennis Team",
			email:    "newstudent@mergington.edu",
			wantMsg:  "Signed up newstudent@mergington.edu for Tennis Team",
		},
		{
			name:       "already signed up",
			activity:   "Chess Club",
			email:      "michael@mergington.edu",
			wantCode:   "ALREADY_SIGNED_UP",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "activity not found",
			activity:   "Nonexistent Activity",
			email:      "student@mergington.edu",
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty email",
			activity:   "Chess Club",
			email:      "",
			wantCode:   "BAD_REQUEST",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty activity name",
			activity:   "",
			email:      "student@mergington.edu",
			wantCode:   "BAD_REQUEST",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			msg, err := svc.Enroll(context.Background(), tt.activity, tt.email)
			if tt.wantCode != "" {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.Contains(t, svc.ListActivities(context.Background())[tt.activity].Participants, tt.email)
		})
	}
}

func TestActivityService_Withdraw(t *testing.T) {
	tests := []struct {
		name       string
		activity   string
		email      string
		wantMsg    string
		wantCode   string
		wantStatus int
	}{
		{
			name:     "success",
			activity: "Science Club",
			email:    "avery@mergington.edu",
			wantMsg:  "Unregistered avery@mergington.edu from Science Club",
		},
		{
			name:       "not signed up",
			activity:   "Chess Club",
			email:      "notregistered@mergington.edu",
			wantCode:   "NOT_SIGNED_UP",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "activity not found",
			activity:   "Nonexistent Activity",
			email:      "student@mergington.edu",
			wantCode:   "NOT_FOUND",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			msg, err := svc.Withdraw(context.Background(), tt.activity, tt.email)
			if tt.wantCode != "" {
				var appErr *service.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.wantCode, appErr.Code)
				assert.Equal(t, tt.wantStatus, appErr.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
			assert.NotContains(t, svc.ListActivities(context.Background())[tt.activity].Participants, tt.email)
		})
	}
}

func TestActivityService_IsNotFound(t *testing.T) {
	svc := newService(t)

	_, err := svc.Withdraw(context.Background(), "Nonexistent Activity", "student@mergington.edu")
	assert.True(t, service.IsNotFound(err))

	_, err = svc.Enroll(context.Background(), "Chess Club", "michael@mergington.edu")
	assert.False(t, service.IsNotFound(err))
}
