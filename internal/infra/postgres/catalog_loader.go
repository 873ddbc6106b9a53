package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hackquest-service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CatalogLoader loads catalog JSONB from Postgres.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM quizzes WHERE id=$1`, quizID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz: %w", err)
	}
	if err := quiz.Validate(); err != nil {
		return domain.Quiz{}, fmt.Errorf("invalid quiz content: %w", err)
	}
	return quiz, nil
}

func (l *CatalogLoader) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM quizzes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var out []domain.Quiz
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		var quiz domain.Quiz
		if err := json.Unmarshal(raw, &quiz); err != nil {
			return nil, fmt.Errorf("unmarshal quiz: %w", err)
		}
		if err := quiz.Validate(); err != nil {
			return nil, fmt.Errorf("invalid quiz content: %w", err)
		}
		out = append(out, quiz)
	}
	return out, rows.Err()
}

func (l *CatalogLoader) LoadHackathon(ctx context.Context, hackathonID string) (domain.Hackathon, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM hackathons WHERE id=$1`, hackathonID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Hackathon{}, domain.ErrHackathonNotFound
	}
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("load hackathon: %w", err)
	}
	var h domain.Hackathon
	if err := json.Unmarshal(raw, &h); err != nil {
		return domain.Hackathon{}, fmt.Errorf("unmarshal hackathon: %w", err)
	}
	return h, nil
}

func (l *CatalogLoader) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM hackathons ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}
	defer rows.Close()

	var out []domain.Hackathon
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan hackathon: %w", err)
		}
		var h domain.Hackathon
		if err := json.Unmarshal(raw, &h); err != nil {
			return nil, fmt.Errorf("unmarshal hackathon: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
