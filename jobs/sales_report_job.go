package jobs

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"motostream-api/logger"
	"motostream-api/services"
)

// SalesReportJob periodically emails a sales summary to the dealership owner.
type SalesReportJob struct {
	statsService *services.StatsService
	emailService *services.EmailService
	ticker       *time.Ticker
	done         chan bool
}

func NewSalesReportJob(db *gorm.DB, emailService *services.EmailService, interval time.Duration) *SalesReportJob {
	return &SalesReportJob{
		statsService: services.NewStatsService(db),
		emailService: emailService,
		ticker:       time.NewTicker(interval),
		done:         make(chan bool),
	}
}

// Start begins the reporting loop.
func (j *SalesReportJob) Start() {
	logger.Get().Info("sales report job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.report()
			case <-j.done:
				logger.Get().Info("sales report job stopped")
				return
			}
		}
	}()
}

// Stop stops the reporting loop.
func (j *SalesReportJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *SalesReportJob) report() {
	stats, err := j.statsService.Dashboard()
	if err != nil {
		logger.Get().Error("sales report: stats failed", zap.Error(err))
		return
	}

	recent, err := j.statsService.RecentSales(5)
	if err != nil {
		logger.Get().Error("sales report: recent sales failed", zap.Error(err))
		return
	}

	if err := j.emailService.SendSalesSummary(stats, recent); err != nil {
		logger.Get().Error("sales report: send failed", zap.Error(err))
	}
}
