package models

// Airport - статическая справочная таблица аэропортов рядом с нашими городами.
// Аэропорт, попавший в радиус поиска двух городов, появляется дважды -
// дедупликации нет, это задокументированное ограничение пайплайна.
type Airport struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	AirportICAO string  `gorm:"column:airport_icao;size:4;index" json:"airport_icao"`
	AirportName string  `gorm:"column:airport_name" json:"airport_name"`
	CountryCode string  `gorm:"column:country_code;size:2" json:"country_code"`
	Latitude    float64 `gorm:"column:latitude;type:decimal(6,2)" json:"latitude"`
	Longitude   float64 `gorm:"column:longitude;type:decimal(6,2)" json:"longitude"`
}

func (Airport) TableName() string {
	return "cities_airports"
}
