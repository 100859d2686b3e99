package services

import (
	"context"

	"github.com/fmhevents/elation/internal/models"
)

type DashboardStats struct {
	TotalBookings  int64 `json:"totalBookings"`
	NewBookings    int64 `json:"newBookings"`
	TotalMessages  int64 `json:"totalMessages"`
	NewMessages    int64 `json:"newMessages"`
	TotalServices  int64 `json:"totalServices"`
	TotalPortfolio int64 `json:"totalPortfolio"`
}

type DashboardService struct {
	bookings  models.BookingRepo
	contacts  models.ContactRepo
	services  models.ServiceRepo
	portfolio models.PortfolioRepo
}

func NewDashboardService(
	bookings models.BookingRepo,
	contacts models.ContactRepo,
	services models.ServiceRepo,
	portfolio models.PortfolioRepo,
) *DashboardService {
	return &DashboardService{
		bookings:  bookings,
		contacts:  contacts,
		services:  services,
		portfolio: portfolio,
	}
}

func (ds *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalBookings, err = ds.bookings.CountBookings(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NewBookings, err = ds.bookings.CountBookings(ctx, models.BookingStatusNew); err != nil {
		return nil, err
	}
	if stats.TotalMessages, err = ds.contacts.CountContacts(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NewMessages, err = ds.contacts.CountContacts(ctx, models.ContactStatusNew); err != nil {
		return nil, err
	}
	if stats.TotalServices, err = ds.services.CountServices(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPortfolio, err = ds.portfolio.CountPortfolio(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
