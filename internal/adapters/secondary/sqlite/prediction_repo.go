package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

const schemaDDL = `
    CREATE TABLE IF NOT EXISTS rental_prediction (
        id TEXT PRIMARY KEY,
        created_at DATETIME NOT NULL,
        model_version TEXT NOT NULL,
        area REAL NOT NULL,
        beds INTEGER NOT NULL,
        bathrooms INTEGER NOT NULL,
        balconies INTEGER NOT NULL,
        furnishing TEXT NOT NULL,
        area_rate REAL NOT NULL,
        city TEXT NOT NULL,
        locality TEXT NOT NULL,
        price REAL NOT NULL,
        display TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS rental_prediction_city_idx ON rental_prediction (city, created_at);
`

const selectColumns = `id, created_at, model_version, area, beds, bathrooms, balconies,
	furnishing, area_rate, city, locality, price, display`

type predictionRepo struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite history database at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create rental_prediction table: %w", err)
	}
	return db, nil
}

func NewPredictionRepository(db *sql.DB) ports.PredictionRepository {
	return &predictionRepo{db: db}
}

func (r *predictionRepo) Create(ctx context.Context, p *domain.Prediction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rental_prediction
			(id, created_at, model_version, area, beds, bathrooms, balconies,
			 furnishing, area_rate, city, locality, price, display)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID.String(), p.CreatedAt.UTC(), p.ModelVersion,
		p.Fields.Area, p.Fields.Beds, p.Fields.Bathrooms, p.Fields.Balconies,
		p.Fields.Furnishing.String(), p.Fields.AreaRate,
		p.Fields.City, p.Fields.Locality, p.Price, p.Display,
	)
	if err != nil {
		return fmt.Errorf("create prediction: %w", err)
	}
	return nil
}

func (r *predictionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Prediction, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM rental_prediction WHERE id = ?", id.String())

	p, err := scanPrediction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("get prediction by id: %w", err)
	}
	return p, nil
}

func (r *predictionRepo) List(ctx context.Context, filter ports.PredictionFilter) ([]*domain.Prediction, int, error) {
	where := "1=1"
	args := []interface{}{}
	if filter.City != "" {
		where = "city = ?"
		args = append(args, filter.City)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rental_prediction WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count predictions: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT "+selectColumns+" FROM rental_prediction WHERE "+where+
			" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list predictions: %w", err)
	}
	defer rows.Close()

	predictions := []*domain.Prediction{}
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan prediction row: %w", err)
		}
		predictions = append(predictions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate prediction rows: %w", err)
	}

	return predictions, total, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPrediction(row scanner) (*domain.Prediction, error) {
	var (
		p          domain.Prediction
		furnishing string
	)
	err := row.Scan(
		&p.ID, &p.CreatedAt, &p.ModelVersion,
		&p.Fields.Area, &p.Fields.Beds, &p.Fields.Bathrooms, &p.Fields.Balconies,
		&furnishing, &p.Fields.AreaRate,
		&p.Fields.City, &p.Fields.Locality, &p.Price, &p.Display,
	)
	if err != nil {
		return nil, err
	}
	if p.Fields.Furnishing, err = domain.ParseFurnishing(furnishing); err != nil {
		return nil, fmt.Errorf("stored furnishing %q: %w", furnishing, err)
	}
	return &p, nil
}
