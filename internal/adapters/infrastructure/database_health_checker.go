package infrastructure

import (
	"context"

	"gorm.io/gorm"

	"floodaware.app/internal/ports"
)

// DatabaseHealthChecker pings the alert backend's database
type DatabaseHealthChecker struct {
	db *gorm.DB
}

func NewDatabaseHealthChecker(db *gorm.DB) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{db: db}
}

func (d *DatabaseHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{Component: "database"}

	if d.db == nil {
		return unhealthy(status, "database instance is nil")
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return unhealthy(status, "failed to get underlying database connection")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unhealthy(status, err.Error())
	}

	status.Status = StatusHealthy
	status.Details = map[string]interface{}{
		"dialect":     d.db.Dialector.Name(),
		"connections": sqlDB.Stats().OpenConnections,
	}
	return status
}
