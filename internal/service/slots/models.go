package slots

import (
	"fmt"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
)

// Template дневной шаблон: по слоту на каждый час в [StartHour, EndHour)
type Template struct {
	StartHour int
	EndHour   int
}

// DefaultTemplate 08:00-22:00, 14 слотов
var DefaultTemplate = Template{StartHour: domain.DefaultStartHour, EndHour: domain.DefaultEndHour}

// Validate EndHour не больше 23: конец слота хранится как время суток того же дня, 24:00 не выражается
func (t Template) Validate() error {
	if t.StartHour < 0 || t.EndHour > 23 || t.StartHour >= t.EndHour {
		return fmt.Errorf("%w: hours [%d, %d)", ErrInvalidTemplate, t.StartHour, t.EndHour)
	}
	return nil
}

// SlotsPerDay количество слотов, которые даёт шаблон
func (t Template) SlotsPerDay() int {
	return t.EndHour - t.StartHour
}

// Window горизонт материализации слотов
type Window struct {
	PrefetchDays int // sweep генерирует [today, today+PrefetchDays)
	HorizonDays  int // ленивая генерация разрешена для [today, today+HorizonDays]
}

var DefaultWindow = Window{PrefetchDays: domain.DefaultPrefetchDays, HorizonDays: domain.DefaultHorizonDays}

// SweepResult итог eager-очистки и предгенерации
type SweepResult struct {
	PurgedSlots      int64
	PurgedBookings   int64
	ReleasedBookings int // бронирования слотов, закончившихся сегодня
	GeneratedSlots   int
	Venues           int
}
