package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEventNotFound = errors.New("event not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event *Event) (*Event, error) {
	if !event.HasRequiredFields() {
		return nil, errors.New("event details missing")
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO event (id, title, date, time, location, description, djs, tickets, image_url, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		event.ID, event.Title, event.Date, event.Time, event.Location,
		event.Description, event.DJs, event.Tickets, event.ImageURL, event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Event, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, date, time, location, description, djs, tickets, image_url, created_at
			FROM event WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, ErrEventNotFound
	}

	var event Event
	if err := rows.Scan(
		&event.ID, &event.Title, &event.Date, &event.Time, &event.Location,
		&event.Description, &event.DJs, &event.Tickets, &event.ImageURL, &event.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}
	return &event, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM event WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) List(ctx context.Context) ([]Event, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, date, time, location, description, djs, tickets, image_url, created_at
			FROM event
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var events []Event
	for rows.Next() {
		var event Event
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Date, &event.Time, &event.Location,
			&event.Description, &event.DJs, &event.Tickets, &event.ImageURL, &event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
