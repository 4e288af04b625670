package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ParkModel is the GORM model for the parks table
type ParkModel struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	ParkName string `gorm:"column:parkname;index"`
	State    string `gorm:"column:state"`
}

// TableName overrides GORM's default "park_models"
func (ParkModel) TableName() string {
	return "parks"
}

// MySQLStore implements Store using MySQL with GORM
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore opens a MySQL store.
//
// dsn format: user:password@tcp(host:port)/dbname?parseTime=true
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	return &MySQLStore{db: db}, nil
}

// ListNames returns the distinct park names ordered by name
//
// SELECT DISTINCT `parkname` FROM `parks` ORDER BY parkname
func (s *MySQLStore) ListNames(ctx context.Context) ([]string, error) {
	var names []string

	result := s.db.WithContext(ctx).
		Model(&ParkModel{}).
		Distinct("parkname").
		Order("parkname").
		Pluck("parkname", &names)
	if result.Error != nil {
		return nil, fmt.Errorf("database query failed: %w", result.Error)
	}

	return names, nil
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
