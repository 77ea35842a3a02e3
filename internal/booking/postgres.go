package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/crgw/rental-quote/internal/schema"
)

const findByIDQuery = `SELECT id, car_id, start_date, to_char(start_time, 'HH24:MI'), end_date, to_char(end_time, 'HH24:MI'), options, base_price_per_day, total_price FROM bookings WHERE id = $1`

type postgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (Booking, error) {
	var (
		booking Booking
		options []byte
	)

	err := r.db.QueryRowContext(ctx, findByIDQuery, id).Scan(
		&booking.ID,
		&booking.CarID,
		&booking.StartDate,
		&booking.StartTime,
		&booking.EndDate,
		&booking.EndTime,
		&options,
		&booking.BasePricePerDay,
		&booking.TotalPrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, fmt.Errorf("%w: %s", ErrorBookingNotFound, id)
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to load booking %s: %w", id, err)
	}

	booking.Options, err = schema.DecodeRentalOptions(options)
	if err != nil {
		return Booking{}, fmt.Errorf("booking %s has unreadable options: %w", id, err)
	}

	return booking, nil
}
