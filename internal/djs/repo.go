package djs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, dj *DJ) (*DJ, error) {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO dj (id, name, genre, location, price, rating, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		dj.ID, dj.Name, dj.Genre, dj.Location, dj.Price, dj.Rating, dj.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dj, nil
}

// Delete is deliberately idempotent. Removing an id that is not there
// is not an error for this resource.
func (r *Repo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM dj WHERE id = $1;`,
		id,
	)
	return err
}

func (r *Repo) List(ctx context.Context) ([]DJ, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, genre, location, price, rating, created_at
			FROM dj
			ORDER BY name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var djs []DJ
	for rows.Next() {
		var dj DJ
		if err := rows.Scan(
			&dj.ID, &dj.Name, &dj.Genre, &dj.Location, &dj.Price, &dj.Rating, &dj.CreatedAt,
		); err != nil {
			return nil, err
		}
		djs = append(djs, dj)
	}

	return djs, nil
}
