package domain

// Slot template defaults
const (
	DefaultStartHour    = 8  // первый слот 08:00-09:00
	DefaultEndHour      = 22 // последний слот 21:00-22:00
	SlotDurationMinutes = 60
)

// Horizon defaults
const (
	DefaultPrefetchDays = 7  // сколько дней вперёд генерирует sweep
	DefaultHorizonDays  = 30 // дальше этого слоты по запросу не создаются
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
