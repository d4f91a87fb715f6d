package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type ClassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassRepo(db *dbpg.DB) *ClassRepository {
	return &ClassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClassRepository) Create(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (name, start_time, instructor, total_slots, available_slots, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	err := r.db.Master.QueryRowContext(
		ctx, query,
		c.Name, c.StartTime, c.Instructor, c.TotalSlots, c.AvailableSlots, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert class: %w", err)
	}

	return nil
}

func (r *ClassRepository) ListUpcoming(ctx context.Context) ([]*domain.Class, error) {
	query := `SELECT id, name, start_time, instructor, total_slots, available_slots, created_at
			  FROM classes
			  WHERE start_time >= now()
			  ORDER BY start_time ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Class
	for rows.Next() {
		var c domain.Class
		if err = rows.Scan(
			&c.ID, &c.Name, &c.StartTime, &c.Instructor,
			&c.TotalSlots, &c.AvailableSlots, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

// DueForReminder marks classes starting within the window as reminded and
// returns them with their booking counts. Each class is returned once.
func (r *ClassRepository) DueForReminder(ctx context.Context, window time.Duration) ([]*domain.ClassReminder, error) {
	query := `UPDATE classes c
			  SET reminder_sent = TRUE
			  WHERE c.start_time > now()
			    AND c.start_time <= now() + make_interval(secs => $1)
			    AND NOT c.reminder_sent
			  RETURNING c.id, c.name, c.start_time, c.instructor, c.total_slots, c.available_slots, c.created_at,
			            (SELECT COUNT(*) FROM bookings b WHERE b.class_id = c.id)`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, window.Seconds())
	if err != nil {
		return nil, fmt.Errorf("mark reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.ClassReminder
	for rows.Next() {
		var rem domain.ClassReminder
		if err = rows.Scan(
			&rem.Class.ID, &rem.Class.Name, &rem.Class.StartTime, &rem.Class.Instructor,
			&rem.Class.TotalSlots, &rem.Class.AvailableSlots, &rem.Class.CreatedAt,
			&rem.Booked,
		); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		res = append(res, &rem)
	}

	return res, rows.Err()
}
