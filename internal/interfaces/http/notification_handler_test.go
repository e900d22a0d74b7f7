package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
)

func TestNotifications_SubmitThenListAndMarkRead(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/notifications", tokenFor(t, mgr), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.False(t, list[0].Read)
	assert.Contains(t, list[0].Message, "Eric Employee")

	readResp := jsonRequest(t, s.app, http.MethodPatch, "/api/notifications/"+list[0].ID+"/read", tokenFor(t, mgr), nil)
	assert.Equal(t, http.StatusOK, readResp.StatusCode)
	readResp.Body.Close()

	stored, err := s.notifs.ListByUser(context.Background(), mgr.ID)
	require.NoError(t, err)
	assert.True(t, stored[0].Read)
}

func TestNotifications_MarkReadForeignNotificationGets404(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	mgrNotifs, err := s.notifs.ListByUser(context.Background(), mgr.ID)
	require.NoError(t, err)
	require.Len(t, mgrNotifs, 1)

	// The employee tries to mark the manager's notification.
	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/notifications/"+mgrNotifs[0].ID+"/read", tokenFor(t, emp), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
