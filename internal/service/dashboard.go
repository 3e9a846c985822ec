package service

import (
	"context"

	"pousada-backend/internal/domain"
	"pousada-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	unitRepo     repository.UnitRepository
	guestRepo    repository.GuestRepository
	stayRepo     repository.StayRepository
	paymentRepo  repository.PaymentRepository
	logRepo      repository.MaintenanceLogRepository
	employeeRepo repository.EmployeeRepository
}

func NewDashboardService(
	unitRepo repository.UnitRepository,
	guestRepo repository.GuestRepository,
	stayRepo repository.StayRepository,
	paymentRepo repository.PaymentRepository,
	logRepo repository.MaintenanceLogRepository,
	employeeRepo repository.EmployeeRepository,
) DashboardService {
	return &dashboardService{
		unitRepo:     unitRepo,
		guestRepo:    guestRepo,
		stayRepo:     stayRepo,
		paymentRepo:  paymentRepo,
		logRepo:      logRepo,
		employeeRepo: employeeRepo,
	}
}

// Counts fans the six independent count reads out concurrently. Reads have
// no ordering dependency, unlike the sequential write chains elsewhere.
func (s *dashboardService) Counts(ctx context.Context) (*domain.DashboardCounts, error) {
	var counts domain.DashboardCounts
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		counts.Units, err = s.unitRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Guests, err = s.guestRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Stays, err = s.stayRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Payments, err = s.paymentRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.MaintenanceLogs, err = s.logRepo.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Employees, err = s.employeeRepo.Count(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, domain.NewPersistenceError("dashboard counts", err)
	}
	return &counts, nil
}
