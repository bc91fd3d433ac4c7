package models

// CityWeather - одна строка на каждый шаг прогноза (обычно 3 часа).
// Таблица append-only, строки никогда не обновляются и не удаляются.
type CityWeather struct {
	ID                     uint    `gorm:"primaryKey" json:"-"`
	CityID                 int     `gorm:"column:city_id;index" json:"city_id"`
	Country                string  `gorm:"column:country" json:"country"`
	ForecastTime           string  `gorm:"column:forecast_time" json:"forecast_time"`
	Weather                string  `gorm:"column:weather" json:"weather"`
	Temperature            float64 `gorm:"column:temperature;type:decimal(6,2)" json:"temperature"`
	TemperatureFeelsLike   float64 `gorm:"column:temperature_feels_like;type:decimal(6,2)" json:"temperature_feels_like"`
	Clouds                 int     `gorm:"column:clouds" json:"clouds"`
	Rain                   float64 `gorm:"column:rain;type:decimal(6,2)" json:"rain"`
	Snow                   float64 `gorm:"column:snow;type:decimal(6,2)" json:"snow"`
	WindSpeed              float64 `gorm:"column:wind_speed;type:decimal(6,2)" json:"wind_speed"`
	Humidity               int     `gorm:"column:humidity" json:"humidity"`
	Pressure               int     `gorm:"column:pressure" json:"pressure"`
	InformationRetrievedAt string  `gorm:"column:information_retrieved_at" json:"information_retrieved_at"`
}

func (CityWeather) TableName() string {
	return "cities_weather"
}
