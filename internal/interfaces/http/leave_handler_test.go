package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soprahr/leavedesk-api/internal/application/dto"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	pkgjwt "github.com/soprahr/leavedesk-api/pkg/jwt"
)

// tokenFor issues a bearer header for a seeded user.
func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, string(u.Role), u.Name, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func jsonRequest(t *testing.T, app *fiber.App, method, path, authHeader string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeLeave(t *testing.T, resp *http.Response) dto.LeaveResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.LeaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	defer resp.Body.Close()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// submitOne files a request for the employee and returns its read view.
func submitOne(t *testing.T, s *testServer, employee *entity.User, start, end string) dto.LeaveResponse {
	t.Helper()
	resp := jsonRequest(t, s.app, http.MethodPost, "/api/leaves", tokenFor(t, employee), dto.SubmitLeaveRequest{
		EmployeeID:   employee.ID,
		EmployeeName: employee.Name,
		StartDate:    start,
		EndDate:      end,
		Reason:       "Vacation",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeLeave(t, resp)
}

func TestSubmitLeave_HappyPath(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)

	out := submitOne(t, s, emp, "2026-09-01", "2026-09-04")

	assert.Equal(t, "pending", out.Status)
	assert.Equal(t, emp.ID, out.EmployeeID)
	assert.Equal(t, "Eric Employee", out.EmployeeName)
	assert.Equal(t, 4, out.TotalDays)
	require.NotNil(t, out.ReviewedByID)
	assert.Equal(t, mgr.ID, *out.ReviewedByID, "reviewer is pre-assigned from the employee's manager")
	assert.Nil(t, out.ReviewedAt)

	// Audit entry plus one notification for each side.
	require.Len(t, s.audits.entries, 1)
	assert.Equal(t, entity.AuditSubmitLeave, s.audits.entries[0].Action)
	assert.Equal(t, emp.ID, s.audits.entries[0].UserID)

	mgrNotifs, _ := s.notifs.ListByUser(context.Background(), mgr.ID)
	empNotifs, _ := s.notifs.ListByUser(context.Background(), emp.ID)
	assert.Len(t, mgrNotifs, 1)
	assert.Len(t, empNotifs, 1)
}

func TestSubmitLeave_MissingFields(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)

	resp := jsonRequest(t, s.app, http.MethodPost, "/api/leaves", tokenFor(t, emp), dto.SubmitLeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  "2026-09-01",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields", decodeError(t, resp).Error)
}

func TestSubmitLeave_StartAfterEnd(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)

	resp := jsonRequest(t, s.app, http.MethodPost, "/api/leaves", tokenFor(t, emp), dto.SubmitLeaveRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartDate:    "2026-09-10",
		EndDate:      "2026-09-05",
		Reason:       "Vacation",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestSubmitLeave_NoManagerAssigned(t *testing.T) {
	s := newTestServer()
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, nil)

	resp := jsonRequest(t, s.app, http.MethodPost, "/api/leaves", tokenFor(t, emp), dto.SubmitLeaveRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		StartDate:    "2026-09-01",
		EndDate:      "2026-09-02",
		Reason:       "Vacation",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Error, "no manager")
}

func TestSubmitLeave_MissingTokenGets401(t *testing.T) {
	s := newTestServer()
	resp := jsonRequest(t, s.app, http.MethodPost, "/api/leaves", "", dto.SubmitLeaveRequest{})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing token", decodeError(t, resp).Error)
}

func TestReviewLeave_ApproveDeductsBalance(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-04")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{
		Status:      "approved",
		ReviewNotes: "Enjoy",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeLeave(t, resp)

	assert.Equal(t, "approved", out.Status)
	require.NotNil(t, out.ReviewedByID)
	assert.Equal(t, mgr.ID, *out.ReviewedByID)
	require.NotNil(t, out.ReviewedByName)
	assert.Equal(t, "Marie Manager", *out.ReviewedByName)
	assert.NotNil(t, out.ReviewedAt)
	require.NotNil(t, out.ReviewNotes)
	assert.Equal(t, "Enjoy", *out.ReviewNotes)

	// 4 inclusive days off a 25-day balance.
	stored, err := s.users.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.LeaveBalance.Equal(decimal.NewFromInt(21)),
		"expected balance 21, got %s", stored.LeaveBalance)
}

func TestReviewLeave_RejectKeepsBalance(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-04")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{
		Status: "rejected",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "rejected", decodeLeave(t, resp).Status)

	stored, err := s.users.GetByID(context.Background(), emp.ID)
	require.NoError(t, err)
	assert.True(t, stored.LeaveBalance.Equal(decimal.NewFromInt(25)))
}

func TestReviewLeave_WrongManagerGets403(t *testing.T) {
	s := newTestServer()
	mgr1 := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	mgr2 := s.addUser("mgr-2", "Marc Other", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr1.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr2), dto.ReviewLeaveRequest{
		Status: "approved",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Unauthorized to review this request", decodeError(t, resp).Error)

	stored, err := s.leaves.GetByID(context.Background(), lr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeavePending, stored.Status, "denied review must not mutate the request")
}

func TestReviewLeave_EmployeeRoleBlockedByGate(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, emp), dto.ReviewLeaveRequest{
		Status: "approved",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", decodeError(t, resp).Error)
}

func TestReviewLeave_InvalidStatus(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{
		Status: "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid status", decodeError(t, resp).Error)
}

func TestReviewLeave_DoubleReviewGets409(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{Status: "rejected"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{Status: "approved"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	stored, err := s.leaves.GetByID(context.Background(), lr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeaveRejected, stored.Status, "terminal state must not change")
}

func TestReviewLeave_UnknownRequestGets404(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/nope/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{Status: "approved"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReviewLeave_InsufficientBalanceGets409(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	emp.LeaveBalance = decimal.NewFromInt(2)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-05") // 5 days

	resp := jsonRequest(t, s.app, http.MethodPatch, "/api/leaves/"+lr.ID+"/review", tokenFor(t, mgr), dto.ReviewLeaveRequest{Status: "approved"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Error, "balance")
}

func TestListScoped_EmployeeBlocked(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves", tokenFor(t, emp), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Access denied", decodeError(t, resp).Error)
}

func TestListScoped_ManagerSeesDirectReportsOnly(t *testing.T) {
	s := newTestServer()
	mgr1 := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	mgr2 := s.addUser("mgr-2", "Marc Other", entity.RoleManager, nil)
	emp1 := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr1.ID)
	emp2 := s.addUser("emp-2", "Eva Elsewhere", entity.RoleEmployee, &mgr2.ID)

	submitOne(t, s, emp1, "2026-09-01", "2026-09-02")
	submitOne(t, s, emp2, "2026-09-03", "2026-09-04")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves", tokenFor(t, mgr1), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []dto.LeaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, emp1.ID, list[0].EmployeeID)
	require.NotNil(t, list[0].Employee, "scoped listing is enriched with the employee record")
	assert.Equal(t, "Eric Employee", list[0].Employee.Name)
}

func TestListScoped_HeadSeesTwoHopsNeverDirectReports(t *testing.T) {
	s := newTestServer()
	head := s.addUser("head-1", "Claire Chef", entity.RoleHeadOfDepartement, nil)
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, &head.ID)
	// An employee reporting straight to the head: one hop, out of scope.
	direct := s.addUser("emp-direct", "Diane Direct", entity.RoleEmployee, &head.ID)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)

	submitOne(t, s, emp, "2026-09-01", "2026-09-02")
	submitOne(t, s, direct, "2026-09-03", "2026-09-04")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves", tokenFor(t, head), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []dto.LeaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, emp.ID, list[0].EmployeeID,
		"head sees employees of managers reporting to them, never their own direct reports")
}

func TestListMine_RoundTrip(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	other := s.addUser("emp-2", "Eva Elsewhere", entity.RoleEmployee, &mgr.ID)

	submitted := submitOne(t, s, emp, "2026-09-01", "2026-09-02")
	submitOne(t, s, other, "2026-09-03", "2026-09-04")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves/my", tokenFor(t, emp), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	var list []dto.LeaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, submitted.ID, list[0].ID)
	assert.Equal(t, "pending", list[0].Status)
}

func TestUploadAttachment_HappyPath(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "certificate.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("certificate bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/leaves/"+lr.ID+"/attachments", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", tokenFor(t, emp))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.UploadAttachmentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Attachment uploaded successfully", out.Message)
	assert.Contains(t, out.Attachment.FileURL, "certificate.pdf")

	stored, err := s.attachments.ListByLeaveRequest(context.Background(), lr.ID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestUploadAttachment_NoFile(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	req := httptest.NewRequest(http.MethodPost, "/api/leaves/"+lr.ID+"/attachments", nil)
	req.Header.Set("Authorization", tokenFor(t, emp))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSummaryPDF_ManagerDownloads(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves/"+lr.ID+"/pdf", tokenFor(t, mgr), nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestSummaryPDF_EmployeeBlocked(t *testing.T) {
	s := newTestServer()
	mgr := s.addUser("mgr-1", "Marie Manager", entity.RoleManager, nil)
	emp := s.addUser("emp-1", "Eric Employee", entity.RoleEmployee, &mgr.ID)
	lr := submitOne(t, s, emp, "2026-09-01", "2026-09-02")

	resp := jsonRequest(t, s.app, http.MethodGet, "/api/leaves/"+lr.ID+"/pdf", tokenFor(t, emp), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
