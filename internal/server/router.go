package server

import (
	"context"
	"net/http"

	"barkery/internal/handlers"
	applog "barkery/internal/log"
)

func newRouter() http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/logout", handlers.Logout)
	mux.Handle("/app/api/admin/batch-planning", handlers.RequireAdmin(http.HandlerFunc(handlers.BatchPlanningResource)))
	mux.Handle("/app/api/admin/batch-schedules", handlers.RequireAdmin(http.HandlerFunc(handlers.BatchScheduleResource)))
	mux.Handle("/app/api/admin/dogs", handlers.RequireAdmin(http.HandlerFunc(handlers.DogResource)))
	mux.Handle("/app/api/admin/plan-items", handlers.RequireAdmin(http.HandlerFunc(handlers.PlanItemResource)))
	applog.Debug(context.Background(), "routes registered", "adminProtected", true)
	return mux
}
