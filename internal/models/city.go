package models

// City - статическая справочная таблица, заполняется один раз при старте.
// Идентификаторы назначаются по порядку входного списка городов.
type City struct {
	CityID  int    `gorm:"column:city_id;primaryKey;autoIncrement:false" json:"city_id"`
	City    string `gorm:"column:city;not null" json:"city"`
	Country string `gorm:"column:country" json:"country"`
}

func (City) TableName() string {
	return "cities"
}

type CityInfo struct {
	CityID     int     `gorm:"column:city_id;primaryKey;autoIncrement:false" json:"city_id"`
	City       string  `gorm:"column:city;not null" json:"city"`
	Country    string  `gorm:"column:country" json:"country"`
	Latitude   float64 `gorm:"column:latitude;type:decimal(6,2)" json:"latitude"`
	Longitude  float64 `gorm:"column:longitude;type:decimal(6,2)" json:"longitude"`
	Population *int64  `gorm:"column:population" json:"population,omitempty"`
}

func (CityInfo) TableName() string {
	return "cities_info"
}
