package indicator

import (
	"strings"
	"time"
)

// Color значения, которые понимает список на фронте
type Color string

const (
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorGray   Color = "gray"
)

// Indicator описывает бейдж записи в списке: подпись, цвет и фильтр,
// который применяется при клике по бейджу.
type Indicator struct {
	Label  string `json:"label"`
	Color  Color  `json:"color"`
	Filter string `json:"filter"`
}

// DateFormat — формат дат в фильтрах списка
const DateFormat = "2006-01-02"

// clause собирает одно условие фильтра "field,op,value".
// Допустимые операторы: =, <, >, >=, <=
func clause(field, op, value string) string {
	return field + "," + op + "," + value
}

// expr объединяет условия в выражение фильтра через "|"
func expr(clauses ...string) string {
	return strings.Join(clauses, "|")
}

// DaysBetween возвращает календарную разницу в днях (to - from),
// без поправок на часовой пояс. Может быть отрицательной.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// addDays форматирует дату today+n для литералов в фильтрах
func addDays(today time.Time, n int) string {
	return today.AddDate(0, 0, n).Format(DateFormat)
}

// ExpiryBucket раскладывает количество дней до окончания контракта
// по корзинам отчета. Верхняя граница включается.
func ExpiryBucket(days int) string {
	switch {
	case days <= 30:
		return "0-30 Days"
	case days <= 60:
		return "31-60 Days"
	case days <= 90:
		return "61-90 Days"
	default:
		return "90+ Days"
	}
}
