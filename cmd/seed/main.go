// Seeds the development database with a small org chart and a handful of
// leave requests: one department head, four managers reporting to the head
// and ten employees spread across the managers. Every account shares the
// password "password123".
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/soprahr/leavedesk-api/internal/domain/entity"
	"github.com/soprahr/leavedesk-api/internal/infrastructure/postgres"
	"github.com/soprahr/leavedesk-api/pkg/config"
	"github.com/soprahr/leavedesk-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

type seedUser struct {
	name       string
	email      string
	role       entity.Role
	department string
	managerIdx int // index into the managers slice, -1 for none
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	leaves := postgres.NewLeaveRequestRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash seed password")
	}

	now := time.Now()
	newUser := func(name, email string, role entity.Role, department string, managerID *string) *entity.User {
		return &entity.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         role,
			Department:   department,
			ManagerID:    managerID,
			LeaveBalance: decimal.NewFromInt(25),
			TotalLeaves:  decimal.NewFromInt(25),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	head := newUser("Claire Fontaine", "chef@leavedesk.test", entity.RoleHeadOfDepartement, "Engineering", nil)
	if err := users.Create(ctx, head); err != nil {
		log.Fatal().Err(err).Msg("seed head of department")
	}

	managerSpecs := []seedUser{
		{name: "Marc Dupont", email: "marc.dupont@leavedesk.test", department: "Platform"},
		{name: "Sophie Bernard", email: "sophie.bernard@leavedesk.test", department: "Payroll"},
		{name: "Julien Moreau", email: "julien.moreau@leavedesk.test", department: "Mobile"},
		{name: "Amélie Roux", email: "amelie.roux@leavedesk.test", department: "Data"},
	}
	managers := make([]*entity.User, 0, len(managerSpecs))
	for _, s := range managerSpecs {
		m := newUser(s.name, s.email, entity.RoleManager, s.department, &head.ID)
		if err := users.Create(ctx, m); err != nil {
			log.Fatal().Err(err).Str("email", s.email).Msg("seed manager")
		}
		managers = append(managers, m)
	}

	employeeSpecs := []seedUser{
		{name: "Lucas Petit", email: "lucas.petit@leavedesk.test", department: "Platform", managerIdx: 0},
		{name: "Emma Lefèvre", email: "emma.lefevre@leavedesk.test", department: "Platform", managerIdx: 0},
		{name: "Hugo Garnier", email: "hugo.garnier@leavedesk.test", department: "Platform", managerIdx: 0},
		{name: "Léa Chevalier", email: "lea.chevalier@leavedesk.test", department: "Payroll", managerIdx: 1},
		{name: "Nathan Girard", email: "nathan.girard@leavedesk.test", department: "Payroll", managerIdx: 1},
		{name: "Chloé Lambert", email: "chloe.lambert@leavedesk.test", department: "Payroll", managerIdx: 1},
		{name: "Louis Fournier", email: "louis.fournier@leavedesk.test", department: "Mobile", managerIdx: 2},
		{name: "Manon Bonnet", email: "manon.bonnet@leavedesk.test", department: "Mobile", managerIdx: 2},
		{name: "Gabriel Mercier", email: "gabriel.mercier@leavedesk.test", department: "Data", managerIdx: 3},
		{name: "Inès Blanc", email: "ines.blanc@leavedesk.test", department: "Data", managerIdx: 3},
	}
	employees := make([]*entity.User, 0, len(employeeSpecs))
	for _, s := range employeeSpecs {
		e := newUser(s.name, s.email, entity.RoleEmployee, s.department, &managers[s.managerIdx].ID)
		if err := users.Create(ctx, e); err != nil {
			log.Fatal().Err(err).Str("email", s.email).Msg("seed employee")
		}
		employees = append(employees, e)
	}

	admin := newUser("Alex Martin", "admin@leavedesk.test", entity.RoleAdmin, "IT", nil)
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}

	type seedLeave struct {
		employeeIdx int
		startOffset int // days from today
		length      int
		reason      string
		status      entity.LeaveStatus
	}
	leaveSpecs := []seedLeave{
		{employeeIdx: 0, startOffset: 7, length: 4, reason: "Family vacation", status: entity.LeavePending},
		{employeeIdx: 1, startOffset: 14, length: 2, reason: "Medical appointment", status: entity.LeavePending},
		{employeeIdx: 2, startOffset: -10, length: 5, reason: "Summer holidays", status: entity.LeaveApproved},
		{employeeIdx: 3, startOffset: 3, length: 1, reason: "Moving day", status: entity.LeavePending},
		{employeeIdx: 4, startOffset: -20, length: 3, reason: "Wedding", status: entity.LeaveApproved},
		{employeeIdx: 6, startOffset: 21, length: 9, reason: "Trip abroad", status: entity.LeaveRejected},
		{employeeIdx: 8, startOffset: 5, length: 2, reason: "Childcare", status: entity.LeavePending},
		{employeeIdx: 9, startOffset: -5, length: 1, reason: "Personal matters", status: entity.LeaveApproved},
	}
	for _, s := range leaveSpecs {
		e := employees[s.employeeIdx]
		manager := managers[employeeSpecs[s.employeeIdx].managerIdx]
		start := now.AddDate(0, 0, s.startOffset).Truncate(24 * time.Hour)
		lr := &entity.LeaveRequest{
			ID:             uuid.New().String(),
			EmployeeID:     e.ID,
			EmployeeName:   e.Name,
			StartDate:      start,
			EndDate:        start.AddDate(0, 0, s.length-1),
			Reason:         s.reason,
			Status:         s.status,
			ReviewedByID:   &manager.ID,
			ReviewedByName: &manager.Name,
			RequestedAt:    now.AddDate(0, 0, s.startOffset-7),
		}
		if s.status.Terminal() {
			reviewedAt := now.AddDate(0, 0, s.startOffset-3)
			lr.ReviewedAt = &reviewedAt
		}
		if err := leaves.Create(ctx, lr); err != nil {
			log.Fatal().Err(err).Str("employee", e.Name).Msg("seed leave request")
		}
	}

	log.Info().
		Int("managers", len(managers)).
		Int("employees", len(employees)).
		Int("leave_requests", len(leaveSpecs)).
		Msg("seed complete")
}
