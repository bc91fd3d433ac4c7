package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gans/internal/models"
)

// CreateExcelFile выгружает последние строки погоды и прилетов в xlsx
// для аналитиков, которым неудобно ходить в базу напрямую.
func CreateExcelFile(path string, weather []models.CityWeather, arrivals []models.Arrival) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeWeatherSheet(f, weather); err != nil {
		return err
	}
	if err := writeArrivalsSheet(f, arrivals); err != nil {
		return err
	}

	// удаляем дефолтный лист и активируем погодный
	f.DeleteSheet("Sheet1")
	index, err := f.GetSheetIndex("Weather")
	if err == nil {
		f.SetActiveSheet(index)
	}

	return f.SaveAs(path)
}

func writeWeatherSheet(f *excelize.File, records []models.CityWeather) error {
	const sheet = "Weather"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{
		"City ID", "Country", "Forecast Time", "Weather", "Temperature (°C)",
		"Feels Like (°C)", "Clouds (%)", "Rain (mm/3h)", "Snow (mm/3h)",
		"Wind Speed (m/s)", "Humidity (%)", "Pressure (hPa)", "Retrieved At",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, record := range records {
		rowNum := rowIdx + 2 // заголовок в первой строке

		values := []interface{}{
			record.CityID, record.Country, record.ForecastTime, record.Weather,
			record.Temperature, record.TemperatureFeelsLike, record.Clouds,
			record.Rain, record.Snow, record.WindSpeed, record.Humidity,
			record.Pressure, record.InformationRetrievedAt,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			f.SetCellValue(sheet, cell, value)
		}

		tempStyle := getNumberStyle(f, "0.00")
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", rowNum), fmt.Sprintf("F%d", rowNum), tempStyle)
	}

	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheet, colName, colName, 18)
	}

	// подсветка дождливых интервалов
	rainStyle := getConditionalFormatStyle(f, "#CCE5FF")
	rainRule := []excelize.ConditionalFormatOptions{
		{
			Type:     "cell",
			Criteria: ">",
			Value:    "0",
			Format:   &rainStyle,
		},
	}
	return f.SetConditionalFormat(sheet, "H2:H10000", rainRule)
}

func writeArrivalsSheet(f *excelize.File, records []models.Arrival) error {
	const sheet = "Arrivals"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{
		"Arrival Airport", "Flight Number", "Airline", "Arrival Time",
		"Departure City", "Departure Airport", "Retrieved On",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for rowIdx, record := range records {
		rowNum := rowIdx + 2

		values := []interface{}{
			record.ArrivalAirportICAO,
			record.FlightNumber,
			record.Airline,
			record.ArrivalTime.Format("2006-01-02 15:04"),
			record.DepartureCity,
			record.DepartureAirportICAO,
			record.DataRetrievedOn.Format("2006-01-02"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			f.SetCellValue(sheet, cell, value)
		}
	}

	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheet, colName, colName, 20)
	}

	return nil
}

func getNumberStyle(f *excelize.File, format string) int {
	style, err := f.NewStyle(&excelize.Style{
		CustomNumFmt: &format,
	})
	if err != nil {
		return 0
	}
	return style
}

func getConditionalFormatStyle(f *excelize.File, color string) int {
	style, err := f.NewConditionalStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{color},
			Pattern: 1,
		},
	})
	if err != nil {
		return 0
	}
	return style
}
