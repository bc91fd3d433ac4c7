package models

import (
	"time"
)

// Arrival - прилеты за два полудневных окна на каждый аэропорт.
// Имя колонки data_retrived_on сохраняет опечатку исходной схемы gans,
// переименование сломало бы существующих потребителей.
type Arrival struct {
	ID                   uint      `gorm:"primaryKey" json:"-"`
	ArrivalAirportICAO   string    `gorm:"column:arrival_airport_icao;size:4;index" json:"arrival_airport_icao"`
	FlightNumber         string    `gorm:"column:flight_number" json:"flight_number"`
	Airline              string    `gorm:"column:airline" json:"airline"`
	ArrivalTime          time.Time `gorm:"column:arrival_time" json:"arrival_time"`
	DepartureCity        string    `gorm:"column:departure_city" json:"departure_city"`
	DepartureAirportICAO string    `gorm:"column:departure_airport_icao;size:4" json:"departure_airport_icao"`
	DataRetrievedOn      time.Time `gorm:"column:data_retrived_on" json:"data_retrived_on"`
}

func (Arrival) TableName() string {
	return "cities_arrivals"
}
