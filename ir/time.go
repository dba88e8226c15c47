package ir

import "time"

// TOML date-time layouts. Fractional seconds use .999999999 so trailing
// zeros (and the dot itself, when the fraction is zero) drop out of the
// rendered form.
const (
	DatetimeLayout      = "2006-01-02T15:04:05.999999999Z07:00"
	LocalDatetimeLayout = "2006-01-02T15:04:05.999999999"
	LocalDateLayout     = "2006-01-02"
	LocalTimeLayout     = "15:04:05.999999999"
)

// FormatTime renders t in the TOML layout for the given date-time type.
// Non-date-time types yield "".
func FormatTime(typ Type, t time.Time) string {
	switch typ {
	case DatetimeType:
		return t.Format(DatetimeLayout)
	case LocalDatetimeType:
		return t.Format(LocalDatetimeLayout)
	case LocalDateType:
		return t.Format(LocalDateLayout)
	case LocalTimeType:
		return t.Format(LocalTimeLayout)
	}
	return ""
}
