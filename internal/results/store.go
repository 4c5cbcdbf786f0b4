// Package results persists completed surveys in DuckDB.
package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"

	"scentsurvey/internal/catalog"
)

// ErrNotFound reports a result id with no stored row.
var ErrNotFound = errors.New("result not found")

const selectColumns = `CAST(result_id AS VARCHAR), respondent, recommended, score,
  scores, answers, answers_key, completed_at`

// Store reads and writes survey results.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open connects to the DuckDB file at path and applies the schema.
// An empty path or ":memory:" opens an in-memory database.
func Open(ctx context.Context, path string, logger *log.Logger) (*Store, error) {
	if ctx == nil {
		return nil, errors.New("results: context is nil")
	}
	if path == ":memory:" {
		path = ""
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping result store: %w", err)
	}
	store, err := New(ctx, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing connection and applies the schema.
func New(ctx context.Context, db *sql.DB, logger *log.Logger) (*Store, error) {
	if err := EnsureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("apply result schema: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save assigns an id and fingerprint and inserts the result.
func (s *Store) Save(ctx context.Context, result Result) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("results: context is nil")
	}
	scores, err := CanonicalJSON(result.Scores)
	if err != nil {
		return Result{}, fmt.Errorf("encode scores: %w", err)
	}
	answers, err := CanonicalJSON(result.Answers)
	if err != nil {
		return Result{}, fmt.Errorf("encode answers: %w", err)
	}
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = time.Now().UTC()
	}
	result.AnswersKey = fingerprintBytes(answers)
	if _, err := s.db.ExecContext(
		ctx,
		`INSERT INTO survey_results (
		  result_id, respondent, recommended, score, scores, answers, answers_key, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.Respondent,
		string(result.Recommended),
		result.Score,
		string(scores),
		string(answers),
		result.AnswersKey,
		result.CompletedAt,
	); err != nil {
		return Result{}, fmt.Errorf("insert result: %w", err)
	}
	s.logger.Debug("saved result", "id", result.ID, "recommended", result.Recommended, "score", result.Score)
	return result, nil
}

// Get loads one result by id.
func (s *Store) Get(ctx context.Context, id string) (Result, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Result{}, fmt.Errorf("result %q: %w", id, ErrNotFound)
	}
	row := s.db.QueryRowContext(ctx, "SELECT "+selectColumns+" FROM survey_results WHERE result_id = ?", id)
	result, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, fmt.Errorf("result %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Result{}, fmt.Errorf("get result: %w", err)
	}
	return result, nil
}

// List returns the newest results first. A limit of zero or less returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Result, error) {
	query := "SELECT " + selectColumns + " FROM survey_results ORDER BY completed_at DESC, result_id"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()
	var out []Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return out, nil
}

// CountByAnswers reports how many stored results share an answers fingerprint.
func (s *Store) CountByAnswers(ctx context.Context, key string) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM survey_results WHERE answers_key = ?", key).Scan(&count); err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var (
		result      Result
		recommended string
		scores      string
		answers     string
	)
	if err := row.Scan(
		&result.ID,
		&result.Respondent,
		&recommended,
		&result.Score,
		&scores,
		&answers,
		&result.AnswersKey,
		&result.CompletedAt,
	); err != nil {
		return Result{}, err
	}
	result.Recommended = catalog.Category(recommended)
	if err := json.Unmarshal([]byte(scores), &result.Scores); err != nil {
		return Result{}, fmt.Errorf("decode scores: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &result.Answers); err != nil {
		return Result{}, fmt.Errorf("decode answers: %w", err)
	}
	result.CompletedAt = result.CompletedAt.UTC()
	return result, nil
}
