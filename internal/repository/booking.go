package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/harishnemade100/fitness-studio-booking/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Admit runs the whole admission sequence in one transaction. The class row is
// locked with SELECT ... FOR UPDATE, so concurrent requests against the same
// class serialize on the row lock: the capacity check, the duplicate check and
// the slot decrement all happen against state no other admission can touch
// until commit. Requests for different classes do not contend.
//
// A repeat request for the same (user, class) pair is not an error: it returns
// the existing booking with AdmissionAlreadyBooked and consumes nothing.
func (r *BookingRepository) Admit(ctx context.Context, classID int64, email string) (*domain.Admission, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var class domain.Class
	classQuery := `SELECT id, name, start_time, instructor, total_slots, available_slots
				   FROM classes
				   WHERE id = $1
				   FOR UPDATE`
	if err = tx.QueryRowContext(ctx, classQuery, classID).Scan(
		&class.ID, &class.Name, &class.StartTime, &class.Instructor,
		&class.TotalSlots, &class.AvailableSlots,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("lock class row: %w", err)
	}

	var user domain.User
	userQuery := `SELECT id, name, email FROM users WHERE email = $1`
	if err = tx.QueryRowContext(ctx, userQuery, email).Scan(&user.ID, &user.Name, &user.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotRegistered
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	// Duplicate check comes before the capacity check: a user who already
	// holds a booking gets it back even when the class has since filled up.
	var existing domain.Booking
	dupQuery := `SELECT id, booked_at FROM bookings WHERE class_id = $1 AND user_id = $2`
	err = tx.QueryRowContext(ctx, dupQuery, class.ID, user.ID).Scan(&existing.ID, &existing.BookedAt)
	if err == nil {
		// Read-only so far; the deferred rollback releases the row lock.
		return alreadyBooked(&class, &user, &existing), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	if class.AvailableSlots <= 0 {
		return nil, domain.ErrNoSlotsAvailable
	}

	booking := domain.Booking{
		ClassID:  class.ID,
		UserID:   user.ID,
		BookedAt: time.Now().UTC(),
	}
	insertQuery := `INSERT INTO bookings (class_id, user_id, booked_at)
					VALUES ($1, $2, $3)
					RETURNING id`
	if err = tx.QueryRowContext(ctx, insertQuery, booking.ClassID, booking.UserID, booking.BookedAt).
		Scan(&booking.ID); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost a race on the unique index. The tx is aborted, so answer
			// from the winner's committed row, same outcome as the duplicate
			// check above.
			tx.Rollback()
			if err = r.db.Master.QueryRowContext(ctx, dupQuery, class.ID, user.ID).
				Scan(&existing.ID, &existing.BookedAt); err != nil {
				return nil, fmt.Errorf("read racing booking: %w", err)
			}
			return alreadyBooked(&class, &user, &existing), nil
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE classes SET available_slots = available_slots - 1 WHERE id = $1`,
		class.ID,
	); err != nil {
		return nil, fmt.Errorf("decrement available_slots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &domain.Admission{
		Status: domain.AdmissionCreated,
		Detail: detail(&class, &user, &booking),
	}, nil
}

// Cancel deletes a booking and releases its slot under the same class row
// lock as Admit. The requester email must match the booking's owner; a
// mismatch reports not-found rather than revealing the booking exists.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, email string) (*domain.BookingDetail, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var booking domain.Booking
	var user domain.User
	ownerQuery := `SELECT b.id, b.class_id, b.user_id, b.booked_at, u.name, u.email
				   FROM bookings b
				   JOIN users u ON u.id = b.user_id
				   WHERE b.id = $1`
	if err = tx.QueryRowContext(ctx, ownerQuery, bookingID).Scan(
		&booking.ID, &booking.ClassID, &booking.UserID, &booking.BookedAt,
		&user.Name, &user.Email,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	user.ID = booking.UserID

	if user.Email != email {
		return nil, domain.ErrBookingNotFound
	}

	var class domain.Class
	classQuery := `SELECT id, name, start_time, instructor, total_slots, available_slots
				   FROM classes
				   WHERE id = $1
				   FOR UPDATE`
	if err = tx.QueryRowContext(ctx, classQuery, booking.ClassID).Scan(
		&class.ID, &class.Name, &class.StartTime, &class.Instructor,
		&class.TotalSlots, &class.AvailableSlots,
	); err != nil {
		return nil, fmt.Errorf("lock class row: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("delete rows affected: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrBookingNotFound
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE classes SET available_slots = available_slots + 1 WHERE id = $1`,
		class.ID,
	); err != nil {
		return nil, fmt.Errorf("release slot: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	d := detail(&class, &user, &booking)
	return &d, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.BookingDetail, error) {
	query := `SELECT b.id, b.class_id, c.name, c.start_time, c.instructor,
					 u.id, u.name, u.email, b.booked_at
			  FROM bookings b
			  JOIN classes c ON c.id = b.class_id
			  JOIN users u ON u.id = b.user_id
			  WHERE b.user_id = $1
			  ORDER BY b.booked_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingDetail
	for rows.Next() {
		var d domain.BookingDetail
		if err = rows.Scan(
			&d.BookingID, &d.ClassID, &d.ClassName, &d.StartTime, &d.Instructor,
			&d.UserID, &d.UserName, &d.UserEmail, &d.BookedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking detail: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func alreadyBooked(class *domain.Class, user *domain.User, booking *domain.Booking) *domain.Admission {
	booking.ClassID = class.ID
	booking.UserID = user.ID
	return &domain.Admission{
		Status: domain.AdmissionAlreadyBooked,
		Detail: detail(class, user, booking),
	}
}

func detail(class *domain.Class, user *domain.User, booking *domain.Booking) domain.BookingDetail {
	return domain.BookingDetail{
		BookingID:  booking.ID,
		ClassID:    class.ID,
		ClassName:  class.Name,
		StartTime:  class.StartTime,
		Instructor: class.Instructor,
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		BookedAt:   booking.BookedAt,
	}
}
