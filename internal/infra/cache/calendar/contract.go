package calendar

// Metrics счетчики попаданий в кэш
type Metrics interface {
	IncCalendarCache(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
