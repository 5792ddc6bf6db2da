package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate formata uma data para exibição e exportação; data zero vira ""
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format("2006-01-02")
}

// MonthRange retorna o primeiro e o último instante de um período MM-YYYY
func MonthRange(period string) (time.Time, time.Time, error) {
	start, err := time.Parse("01-2006", period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end, nil
}
