package model

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobpulse/internal/config"
)

var DB *gorm.DB

func InitDB(dbConfig config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dbConfig.DSN), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(dbConfig.MaxIdleConns)
	sqlDB.SetMaxOpenConns(dbConfig.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Second * time.Duration(dbConfig.MaxLifetime))

	DB = db

	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&JobPosting{})
}

func InsertTestData(db *gorm.DB) error {
	rate := "year"
	salary := func(v float64) *float64 { return &v }
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	rows := []JobPosting{
		{
			JobTitleShort: "Data Analyst", JobTitle: "Senior Data Analyst",
			JobLocation: "New York, NY", JobScheduleType: strPtr("Full-time"),
			JobWorkFromHome: false, JobPostedDate: day(2024, time.June, 10),
			JobCountry: "United States", CompanyName: "Acme Analytics",
			SalaryRate: &rate, SalaryYearAvg: salary(95000),
		},
		{
			JobTitleShort: "Data Engineer", JobTitle: "Data Engineer",
			JobLocation: "Anywhere", JobScheduleType: strPtr("Full-time"),
			JobWorkFromHome: true, JobPostedDate: day(2024, time.May, 2),
			JobCountry: "United States", CompanyName: "Globex",
			SalaryRate: &rate, SalaryYearAvg: salary(120000),
		},
		{
			JobTitleShort: "Data Scientist", JobTitle: "Junior Data Scientist",
			JobLocation: "Austin, TX", JobScheduleType: strPtr("Contractor"),
			JobWorkFromHome: false, JobPostedDate: day(2024, time.February, 20),
			JobNoDegreeMention: true, JobCountry: "United States",
			CompanyName: "Initech",
		},
	}
	return db.Create(&rows).Error
}

func strPtr(s string) *string { return &s }
