package slots

import (
	"context"
	"fmt"
	"time"

	"github.com/pbp-kelompok-b10/any-venue/internal/domain"
	"github.com/pbp-kelompok-b10/any-venue/pkg/types"
)

// Generator materializes the daily slot template for a venue
type Generator struct {
	slotRepo SlotRepository
	template Template
	metrics  Metrics
	logger   Logger
}

func NewGenerator(slotRepo SlotRepository, template Template, metrics Metrics, logger Logger) (*Generator, error) {
	if err := template.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		slotRepo: slotRepo,
		template: template,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// GenerateSlots creates the day's slots for the venue using the configured template.
// Idempotent: if the venue already has any slot on the date, nothing is inserted.
func (g *Generator) GenerateSlots(ctx context.Context, venueID int64, date time.Time) (int, error) {
	return g.Generate(ctx, venueID, date, g.template)
}

// Generate is GenerateSlots with an explicit template
func (g *Generator) Generate(ctx context.Context, venueID int64, date time.Time, tmpl Template) (int, error) {
	if err := tmpl.Validate(); err != nil {
		return 0, err
	}

	day := types.DateOf(date)

	exists, err := g.slotRepo.ExistsForDate(ctx, venueID, day)
	if err != nil {
		g.logger.Error("GenerateSlots: failed to check slots for venue=%d, date=%s: %v",
			venueID, day.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: GenerateSlots - exists check: %v", ErrInternal, err)
	}
	if exists {
		return 0, nil
	}

	batch, err := buildDay(venueID, day, tmpl)
	if err != nil {
		return 0, fmt.Errorf("%w: GenerateSlots - build template: %v", ErrInternal, err)
	}

	// ON CONFLICT DO NOTHING в репозитории закрывает гонку двух генераторов
	created, err := g.slotRepo.CreateBatch(ctx, batch)
	if err != nil {
		g.logger.Error("GenerateSlots: failed to insert slots for venue=%d, date=%s: %v",
			venueID, day.Format(domain.DateFormat), err)
		return 0, fmt.Errorf("%w: GenerateSlots - insert: %v", ErrInternal, err)
	}

	g.metrics.AddSlotsGenerated(created)
	g.logger.Info("GenerateSlots: created %d slots for venue=%d, date=%s",
		created, venueID, day.Format(domain.DateFormat))

	return created, nil
}

func buildDay(venueID int64, day time.Time, tmpl Template) ([]*domain.Slot, error) {
	batch := make([]*domain.Slot, 0, tmpl.SlotsPerDay())

	for hour := tmpl.StartHour; hour < tmpl.EndHour; hour++ {
		start, err := types.NewTimeStringFromHour(hour)
		if err != nil {
			return nil, err
		}
		end, err := start.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}

		batch = append(batch, &domain.Slot{
			VenueID:   venueID,
			Date:      day,
			StartTime: start,
			EndTime:   end,
		})
	}

	return batch, nil
}
