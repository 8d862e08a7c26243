package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/config"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/workforce"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/workforce-pulse-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/cron"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/openai"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/pkg/sse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/repository/memory"
	chatService "github.com/cmlabs-hris/workforce-pulse-go/internal/service/chat"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/service/detector"
	pulseService "github.com/cmlabs-hris/workforce-pulse-go/internal/service/pulse"
	"github.com/cmlabs-hris/workforce-pulse-go/internal/service/simulator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	settings := workforce.OrgSettings{
		SchedulingEnabled: cfg.Org.SchedulingEnabled,
		OvertimeEnabled:   cfg.Org.OvertimeEnabled,
		KioskPhotoEnabled: cfg.Org.KioskPhotoEnabled,
		GeofenceEnabled:   cfg.Org.GeofenceEnabled,
	}

	employeeRepo := memory.NewEmployeeRepository(fixtures.SeedEmployees(time.Now()))
	engine := detector.NewEngine()
	hub := sse.NewHub()

	pulseSvc := pulseService.NewPulseService(employeeRepo, engine, settings)
	openaiClient := openai.NewClient(cfg.OpenAI)
	chatSvc := chatService.NewChatService(openaiClient)
	sim := simulator.New(employeeRepo, settings, rand.New(rand.NewSource(time.Now().UnixNano())))

	scheduler := cron.NewScheduler()
	if cfg.Simulation.Enabled {
		scheduler.AddJob("workforce-simulation", cfg.Simulation.Interval, func(ctx context.Context) error {
			if err := sim.Tick(ctx); err != nil {
				return err
			}
			snapshot, err := pulseSvc.GetSnapshot(ctx)
			if err != nil {
				return err
			}
			hub.Broadcast(sse.Event{Event: "snapshot", Data: snapshot})
			return nil
		})
	}
	scheduler.Start()
	defer scheduler.Stop()

	pulseHandler := appHTTP.NewPulseHandler(pulseSvc, hub)
	chatHandler := appHTTP.NewChatHandler(chatSvc)

	router := appHTTP.NewRouter(cfg.App.FrontendURL, cfg.App.Env, pulseHandler, chatHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
