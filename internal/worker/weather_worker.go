package worker

import (
	"context"
	"log"
	"time"

	"gans/internal/service"
)

type WeatherWorker struct {
	service  service.WeatherService
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func NewWeatherWorker(service service.WeatherService, interval time.Duration) *WeatherWorker {
	return &WeatherWorker{
		service:  service,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (w *WeatherWorker) Start() {
	if w.running {
		return
	}

	w.running = true
	log.Printf("Weather Worker started with interval %v", w.interval)

	// Первый сбор выполняем сразу, дальше по тикеру
	w.fetchForecasts()

	go w.run()
}

func (w *WeatherWorker) Stop() {
	if !w.running {
		return
	}

	close(w.stopChan)
	w.running = false
	log.Println("Weather Worker stopped")
}

func (w *WeatherWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.fetchForecasts()
		case <-w.stopChan:
			return
		}
	}
}

func (w *WeatherWorker) fetchForecasts() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Weather Worker: Starting fetch...")

	if err := w.service.FetchAndStoreForecasts(ctx); err != nil {
		log.Printf("Weather Worker error: %v", err)
		return
	}

	log.Println("Weather Worker: Fetch completed")
}
