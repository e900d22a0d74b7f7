package http_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/soprahr/leavedesk-api/internal/application/audit"
	"github.com/soprahr/leavedesk-api/internal/application/auth"
	"github.com/soprahr/leavedesk-api/internal/application/directory"
	"github.com/soprahr/leavedesk-api/internal/application/leave"
	"github.com/soprahr/leavedesk-api/internal/application/notification"
	"github.com/soprahr/leavedesk-api/internal/domain"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/domain/repository"
	apphttp "github.com/soprahr/leavedesk-api/internal/interfaces/http"
	"github.com/soprahr/leavedesk-api/pkg/logger"
)

// In-memory repository fakes. They mirror the ordering and filtering
// semantics of the SQL implementations so the handler tests exercise the
// full stack below the router.

type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetManyByID(_ context.Context, ids []string) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) ListByManager(_ context.Context, managerID string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.ReportsTo(managerID) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

type memLeaveRepo struct {
	byID  map[string]*entity.LeaveRequest
	users *memUserRepo
}

func newMemLeaveRepo(users *memUserRepo) *memLeaveRepo {
	return &memLeaveRepo{byID: make(map[string]*entity.LeaveRequest), users: users}
}

func (r *memLeaveRepo) Create(_ context.Context, lr *entity.LeaveRequest) error {
	cp := *lr
	r.byID[lr.ID] = &cp
	return nil
}

func (r *memLeaveRepo) GetByID(_ context.Context, id string) (*entity.LeaveRequest, error) {
	lr, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *lr
	return &cp, nil
}

func (r *memLeaveRepo) Update(_ context.Context, lr *entity.LeaveRequest) error {
	if _, ok := r.byID[lr.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *lr
	r.byID[lr.ID] = &cp
	return nil
}

func (r *memLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]*entity.LeaveRequest, error) {
	var out []*entity.LeaveRequest
	for _, lr := range r.byID {
		if lr.EmployeeID == employeeID {
			cp := *lr
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *memLeaveRepo) ListByManagers(_ context.Context, managerIDs []string) ([]*entity.LeaveRequest, error) {
	managed := make(map[string]bool)
	for _, mid := range managerIDs {
		for _, u := range r.users.byID {
			if u.ReportsTo(mid) {
				managed[u.ID] = true
			}
		}
	}
	var out []*entity.LeaveRequest
	for _, lr := range r.byID {
		if managed[lr.EmployeeID] {
			cp := *lr
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(list []*entity.LeaveRequest) {
	sort.Slice(list, func(i, j int) bool { return list[i].RequestedAt.After(list[j].RequestedAt) })
}

type memAttachmentRepo struct {
	items []*entity.Attachment
}

func (r *memAttachmentRepo) Create(_ context.Context, att *entity.Attachment) error {
	cp := *att
	r.items = append(r.items, &cp)
	return nil
}

func (r *memAttachmentRepo) ListByLeaveRequest(_ context.Context, leaveRequestID string) ([]*entity.Attachment, error) {
	var out []*entity.Attachment
	for _, a := range r.items {
		if a.LeaveRequestID == leaveRequestID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memAttachmentRepo) ListByLeaveRequests(ctx context.Context, ids []string) ([]*entity.Attachment, error) {
	var out []*entity.Attachment
	for _, id := range ids {
		batch, _ := r.ListByLeaveRequest(ctx, id)
		out = append(out, batch...)
	}
	return out, nil
}

type memAuditRepo struct {
	entries []*entity.AuditLogEntry
}

func (r *memAuditRepo) Create(_ context.Context, e *entity.AuditLogEntry) error {
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memAuditRepo) ListRecent(_ context.Context, limit int) ([]*entity.AuditLogEntry, error) {
	out := make([]*entity.AuditLogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type memNotifRepo struct {
	items []*entity.Notification
}

func (r *memNotifRepo) Create(_ context.Context, n *entity.Notification) error {
	cp := *n
	r.items = append(r.items, &cp)
	return nil
}

func (r *memNotifRepo) ListByUser(_ context.Context, userID string) ([]*entity.Notification, error) {
	var out []*entity.Notification
	for _, n := range r.items {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memNotifRepo) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range r.items {
		if n.ID == id && n.UserID == userID {
			n.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// memTx runs fn against the same in-memory repos; there is nothing to roll
// back in the fakes.
type memTx struct {
	leaves *memLeaveRepo
	users  *memUserRepo
}

func (t *memTx) Run(ctx context.Context, fn func(repository.LeaveRequestRepository, repository.UserRepository) error) error {
	return fn(t.leaves, t.users)
}

// memFileStore keeps uploaded bytes in memory and hands back a fake URL.
type memFileStore struct {
	saved map[string][]byte
}

func (s *memFileStore) Save(_ context.Context, leaveRequestID, filename string, r io.Reader) (string, error) {
	if s.saved == nil {
		s.saved = make(map[string][]byte)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("/uploads/%s-%s", leaveRequestID, filename)
	s.saved[url] = data
	return url, nil
}

// stubPDF returns a fixed byte slice; layout is not under test here.
type stubPDF struct{}

func (stubPDF) GenerateLeaveSummaryPDF(context.Context, *entity.LeaveRequest, *entity.User, *entity.User, []*entity.Attachment) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// testServer bundles the app with the fakes behind it so tests can seed and
// inspect state directly.
type testServer struct {
	app         *fiber.App
	users       *memUserRepo
	leaves      *memLeaveRepo
	attachments *memAttachmentRepo
	audits      *memAuditRepo
	notifs      *memNotifRepo
}

func newTestServer() *testServer {
	users := newMemUserRepo()
	leaves := newMemLeaveRepo(users)
	attachments := &memAttachmentRepo{}
	audits := &memAuditRepo{}
	notifs := &memNotifRepo{}

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	recorder := audit.NewRecorder(audits, notifs, log)

	leaveUC := leave.NewUseCase(leaves, users, attachments, &memTx{leaves: leaves, users: users}, recorder, &memFileStore{}, stubPDF{})
	directoryUC := directory.NewUseCase(users)
	notificationUC := notification.NewUseCase(notifs)
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})

	app := fiber.New()
	apphttp.Register(app, apphttp.Handlers{
		Auth:          apphttp.NewAuthHandler(authUC),
		Leaves:        apphttp.NewLeaveHandler(leaveUC, log),
		Users:         apphttp.NewUserHandler(directoryUC, log),
		Notifications: apphttp.NewNotificationHandler(notificationUC, log),
		Audit:         apphttp.NewAuditHandler(recorder, log),
		JWTSecret:     testJWTSecret,
	})

	return &testServer{
		app:         app,
		users:       users,
		leaves:      leaves,
		attachments: attachments,
		audits:      audits,
		notifs:      notifs,
	}
}

// addUser seeds a directory user with a 25-day balance.
func (s *testServer) addUser(id, name string, role entity.Role, managerID *string) *entity.User {
	now := time.Now()
	u := &entity.User{
		ID:           id,
		Name:         name,
		Email:        id + "@leavedesk.test",
		Role:         role,
		ManagerID:    managerID,
		LeaveBalance: decimal.NewFromInt(25),
		TotalLeaves:  decimal.NewFromInt(25),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users.byID[u.ID] = u
	return u
}
