package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
)

type AnalyticsService interface {
	RecordPageView(path, referrer, userAgent, clientIP string) error
	GetDailyViews(days int) ([]repository.DailyViews, error)
	GetDashboardStats() (*repository.DashboardStats, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(aRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: aRepo}
}

// RecordPageView stores a hit. The visitor hash is derived from IP + user
// agent so raw IPs never land in the table.
func (s *analyticsService) RecordPageView(path, referrer, userAgent, clientIP string) error {
	if path == "" {
		path = "/"
	}

	sum := sha256.Sum256([]byte(clientIP + "|" + userAgent))
	view := &model.PageView{
		Path:        path,
		Referrer:    referrer,
		UserAgent:   userAgent,
		VisitorHash: hex.EncodeToString(sum[:16]),
	}
	return s.analyticsRepo.RecordPageView(view)
}

func (s *analyticsService) GetDailyViews(days int) ([]repository.DailyViews, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)
	return s.analyticsRepo.GetDailyViews(startDate, endDate)
}

func (s *analyticsService) GetDashboardStats() (*repository.DashboardStats, error) {
	return s.analyticsRepo.GetDashboardStats()
}
