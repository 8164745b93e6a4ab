package handlers

import (
	"fmt"
	"testing"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"barkery/internal/batchplan"
	"barkery/models"
)

func newHandlersTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:handlers-test-%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Dog{},
		&models.Recipe{},
		&models.Plan{},
		&models.PlanItem{},
		&models.BatchSchedule{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func withTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	prev := database
	db := newHandlersTestDB(t)
	database = db
	t.Cleanup(func() {
		database = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func withTestPlanner(t *testing.T) {
	t.Helper()
	prevPlanner := planner
	prevScheduler := scheduler
	planner = batchplan.NewPlanner(nil, batchplan.Params{PackSizeGrams: 340, WasteBuffer: 1.1})
	scheduler = batchplan.NewScheduler(time.Date(2026, time.January, 8, 12, 0, 0, 0, time.UTC))
	t.Cleanup(func() {
		planner = prevPlanner
		scheduler = prevScheduler
	})
}

func withTestSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()
	prev := sessionManager
	sm := scs.New()
	sessionManager = sm
	t.Cleanup(func() {
		sessionManager = prev
	})
	return sm
}
