package repository

import (
	"time"

	"go-teknostore-api/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	RecordPageView(view *model.PageView) error
	GetDailyViews(startDate, endDate time.Time) ([]DailyViews, error)
	GetDashboardStats() (*DashboardStats, error)
}

// DailyViews for chart data
type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

// DashboardStats for admin overview
type DashboardStats struct {
	TotalProducts   int64 `json:"total_products"`
	TotalCategories int64 `json:"total_categories"`
	PendingOrders   int64 `json:"pending_orders"`
	OpenRepairs     int64 `json:"open_repairs"`
	ViewsToday      int64 `json:"views_today"`
	UnreadMessages  int64 `json:"unread_messages"`
}

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepo{db}
}

func (r *analyticsRepo) RecordPageView(view *model.PageView) error {
	return r.db.Create(view).Error
}

func (r *analyticsRepo) GetDailyViews(startDate, endDate time.Time) ([]DailyViews, error) {
	var results []DailyViews

	rows, err := r.db.Model(&model.PageView{}).
		Select("DATE(created_at) as date, COUNT(*) as views").
		Where("created_at BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data DailyViews
		if err := rows.Scan(&data.Date, &data.Views); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, rows.Err()
}

func (r *analyticsRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	r.db.Model(&model.Product{}).Count(&stats.TotalProducts)
	r.db.Model(&model.Category{}).Count(&stats.TotalCategories)
	r.db.Model(&model.Order{}).Where("status = ?", model.OrderPending).Count(&stats.PendingOrders)

	// Repairs still in the shop: anything not delivered or rejected
	r.db.Model(&model.RepairRequest{}).
		Where("status NOT IN ?", []string{string(model.RepairDelivered), string(model.RepairCustomerRejected)}).
		Count(&stats.OpenRepairs)

	startOfDay := time.Now().Truncate(24 * time.Hour)
	r.db.Model(&model.PageView{}).Where("created_at >= ?", startOfDay).Count(&stats.ViewsToday)

	r.db.Model(&model.ContactMessage{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)

	return &stats, nil
}
