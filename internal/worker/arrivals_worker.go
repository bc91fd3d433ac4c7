package worker

import (
	"context"
	"log"
	"time"

	"gans/internal/service"
)

type ArrivalsWorker struct {
	service  service.ArrivalService
	interval time.Duration
	stopChan chan struct{}
	running  bool
}

func NewArrivalsWorker(service service.ArrivalService, interval time.Duration) *ArrivalsWorker {
	return &ArrivalsWorker{
		service:  service,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (w *ArrivalsWorker) Start() {
	if w.running {
		return
	}

	w.running = true
	log.Printf("Arrivals Worker started with interval %v", w.interval)

	w.fetchArrivals()

	go w.run()
}

func (w *ArrivalsWorker) Stop() {
	if !w.running {
		return
	}

	close(w.stopChan)
	w.running = false
	log.Println("Arrivals Worker stopped")
}

func (w *ArrivalsWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.fetchArrivals()
		case <-w.stopChan:
			return
		}
	}
}

func (w *ArrivalsWorker) fetchArrivals() {
	// на каждый аэропорт приходится два запроса, даем батчу больше времени
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("Arrivals Worker: Starting fetch...")

	if err := w.service.FetchAndStoreArrivals(ctx); err != nil {
		log.Printf("Arrivals Worker error: %v", err)
		return
	}

	log.Println("Arrivals Worker: Fetch completed")
}
