// Package seed inserts a small demo catalog so a fresh install has something
// to book. Runs only when the classes table is empty.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type sampleClass struct {
	name       string
	startIn    time.Duration
	instructor string
	slots      int
}

var sampleClasses = []sampleClass{
	{name: "Morning Yoga", startIn: 24*time.Hour + 7*time.Hour, instructor: "Alice Johnson", slots: 20},
	{name: "Evening Zumba", startIn: 24*time.Hour + 18*time.Hour, instructor: "Bob Smith", slots: 25},
	{name: "HIIT Blast", startIn: 48*time.Hour + 6*time.Hour, instructor: "Charlie Brown", slots: 15},
}

func Run(ctx context.Context, db *dbpg.DB, log logger.Logger) error {
	var count int
	if err := db.Master.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes`).Scan(&count); err != nil {
		return fmt.Errorf("count classes: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	query := `INSERT INTO classes (name, start_time, instructor, total_slots, available_slots, created_at)
			  VALUES ($1, $2, $3, $4, $4, $5)`
	for _, sc := range sampleClasses {
		if _, err := db.Master.ExecContext(ctx, query,
			sc.name, now.Add(sc.startIn), sc.instructor, sc.slots, now,
		); err != nil {
			return fmt.Errorf("seed class %q: %w", sc.name, err)
		}
	}

	log.Info("sample classes seeded", logger.Int("count", len(sampleClasses)))
	return nil
}
