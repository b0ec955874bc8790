package changefeed

// CacheInvalidator кэш вместимости, который сбрасывается по уведомлениям БД
type CacheInvalidator interface {
	Invalidate(roomID int64)
	InvalidateAll()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
