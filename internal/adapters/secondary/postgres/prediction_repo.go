package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rental-price-service/internal/core/domain"
	"rental-price-service/internal/core/ports/output"
)

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS rental_prediction (
		id            UUID PRIMARY KEY,
		created_at    TIMESTAMPTZ NOT NULL,
		model_version TEXT NOT NULL,
		area          DOUBLE PRECISION NOT NULL,
		beds          INTEGER NOT NULL,
		bathrooms     INTEGER NOT NULL,
		balconies     INTEGER NOT NULL,
		furnishing    TEXT NOT NULL,
		area_rate     DOUBLE PRECISION NOT NULL,
		city          TEXT NOT NULL,
		locality      TEXT NOT NULL,
		price         DOUBLE PRECISION NOT NULL,
		display       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS rental_prediction_city_idx ON rental_prediction (city, created_at DESC);
`

const selectColumns = `
	id, created_at, model_version, area, beds, bathrooms, balconies,
	furnishing, area_rate, city, locality, price, display
`

type predictionRepo struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) ports.PredictionRepository {
	return &predictionRepo{pool: pool}
}

// EnsureSchema creates the prediction table when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("create rental_prediction table: %w", err)
	}
	return nil
}

func (r *predictionRepo) Create(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO rental_prediction
			(id, created_at, model_version, area, beds, bathrooms, balconies,
			 furnishing, area_rate, city, locality, price, display)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.CreatedAt, p.ModelVersion,
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
	query := fmt.Sprintf(`SELECT %s FROM rental_prediction WHERE id = $1`, selectColumns)

	p, err := scanPrediction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPredictionNotFound
		}
		return nil, fmt.Errorf("get prediction by id: %w", err)
	}
	return p, nil
}

func (r *predictionRepo) List(ctx context.Context, filter ports.PredictionFilter) ([]*domain.Prediction, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city = $%d", argPos))
		args = append(args, filter.City)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM rental_prediction WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count predictions: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM rental_prediction
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, selectColumns, whereClause, argPos, argPos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
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

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
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
