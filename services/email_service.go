package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"motostream-api/config"
	"motostream-api/logger"
	"motostream-api/models"
)

// EmailService sends the daily sales summary to the dealership owner.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
	}
}

// SendSalesSummary mails the current dashboard numbers and the most recent
// sales. No-op when no recipient is configured.
func (es *EmailService) SendSalesSummary(stats *DashboardStats, recent []models.Sale) error {
	if es.config.ReportRecipient == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.ReportRecipient)
	m.SetHeader("Subject", fmt.Sprintf("MotoStream - Sales Summary %s", time.Now().Format("2006-01-02")))

	var recentLines string
	for _, sale := range recent {
		recentLines += fmt.Sprintf("  %s  %s (%s)  %s\n",
			sale.SaleDate.Format("2006-01-02"),
			sale.Motorcycle.Model,
			sale.Motorcycle.Chassis,
			sale.SalePrice.StringFixed(2),
		)
	}
	if recentLines == "" {
		recentLines = "  (no sales yet)\n"
	}

	textBody := fmt.Sprintf(`Sales summary

In stock:        %d
Sold:            %d
Total sales:     %d
Total revenue:   %s
Total customers: %d

Recent sales:
%s
This is an automated email from MotoStream.
`,
		stats.InStock,
		stats.Sold,
		stats.TotalSales,
		stats.TotalRevenue.StringFixed(2),
		stats.TotalCustomers,
		recentLines,
	)

	htmlBody := fmt.Sprintf(`<html><body>
<h2>Sales summary</h2>
<ul>
<li>In stock: <strong>%d</strong></li>
<li>Sold: <strong>%d</strong></li>
<li>Total sales: <strong>%d</strong></li>
<li>Total revenue: <strong>%s</strong></li>
<li>Total customers: <strong>%d</strong></li>
</ul>
<pre>%s</pre>
<p><small>This is an automated email from MotoStream.</small></p>
</body></html>`,
		stats.InStock,
		stats.Sold,
		stats.TotalSales,
		stats.TotalRevenue.StringFixed(2),
		stats.TotalCustomers,
		recentLines,
	)

	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send sales summary: %w", err)
	}

	logger.Get().Info("sales summary sent",
		zap.String("recipient", es.config.ReportRecipient),
		zap.Int64("total_sales", stats.TotalSales),
	)
	return nil
}
