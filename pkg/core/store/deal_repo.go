package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"cre_underwriting/pkg/core/analysis"
)

// DealRepo persists evaluation snapshots: the inputs and the derived analysis
// together, so a saved deal can be re-rendered without recomputation.
type DealRepo struct{}

// NewDealRepo creates a new repository instance.
func NewDealRepo() *DealRepo {
	return &DealRepo{}
}

// DealSummary is the listing row for saved deals.
type DealSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Verdict   string    `json:"verdict"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Save upserts a deal snapshot. An empty id creates a new record and returns
// its generated id.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS deal_snapshots (
//	  id UUID PRIMARY KEY,
//	  name TEXT NOT NULL,
//	  verdict TEXT,
//	  snapshot_json JSONB,
//	  updated_at TIMESTAMPTZ
//	);
func (r *DealRepo) Save(ctx context.Context, id, name string, result analysis.DealAnalysis) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	if id == "" {
		id = uuid.New().String()
	}

	jsonData, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("failed to marshal deal snapshot: %w", err)
	}

	query := `
		INSERT INTO deal_snapshots (id, name, verdict, snapshot_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			verdict = EXCLUDED.verdict,
			snapshot_json = EXCLUDED.snapshot_json,
			updated_at = EXCLUDED.updated_at;
	`

	_, err = pool.Exec(ctx, query, id, name, string(result.Scorecard.Verdict), jsonData, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to save deal snapshot: %w", err)
	}
	return id, nil
}

// Load retrieves one saved snapshot by id.
func (r *DealRepo) Load(ctx context.Context, id string) (string, *analysis.DealAnalysis, error) {
	pool := GetPool()
	if pool == nil {
		return "", nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT name, snapshot_json FROM deal_snapshots WHERE id = $1`

	var name string
	var jsonData []byte
	err := pool.QueryRow(ctx, query, id).Scan(&name, &jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil, fmt.Errorf("no deal found for id %s", id)
		}
		return "", nil, fmt.Errorf("failed to load deal: %w", err)
	}

	var result analysis.DealAnalysis
	if err := json.Unmarshal(jsonData, &result); err != nil {
		return "", nil, fmt.Errorf("failed to unmarshal deal snapshot: %w", err)
	}
	return name, &result, nil
}

// List returns saved-deal summaries, most recently updated first.
func (r *DealRepo) List(ctx context.Context) ([]DealSummary, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT id, name, COALESCE(verdict, ''), updated_at FROM deal_snapshots ORDER BY updated_at DESC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var summaries []DealSummary
	for rows.Next() {
		var s DealSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Verdict, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
