package process

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adsun-ai/adsun/internal/db"
)

// Store manages persistence of process records.
type Store struct {
	db *db.DB
}

// NewStore creates a new process store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

const recordColumns = `id, name, category, owner, frequency, duration_minutes, priority,
	automation_readiness, trigger_type, success_criteria, common_problems, tags,
	description, steps, tools, risks, is_active, created_at`

func scanRecord(row interface{ Scan(...any) error }) (Record, error) {
	var r Record
	err := row.Scan(&r.ID, &r.Name, &r.Category, &r.Owner, &r.Frequency, &r.DurationMinutes,
		&r.Priority, &r.AutomationReadiness, &r.TriggerType, &r.SuccessCriteria,
		&r.CommonProblems, &r.Tags, &r.Description, &r.Steps, &r.Tools, &r.Risks,
		&r.Active, &r.CreatedAt)
	return r, err
}

// Create inserts a new process record. A missing ID is generated and a
// zero automation readiness is clamped to the schema minimum.
func (s *Store) Create(ctx context.Context, r Record) (*Record, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.AutomationReadiness < 1 {
		r.AutomationReadiness = 1
	}
	if r.AutomationReadiness > 5 {
		r.AutomationReadiness = 5
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.Active = true

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO processes (id, name, category, owner, frequency, duration_minutes, priority,
		 automation_readiness, trigger_type, success_criteria, common_problems, tags,
		 description, steps, tools, risks, is_active, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Category, r.Owner, r.Frequency, r.DurationMinutes, r.Priority,
		r.AutomationReadiness, r.TriggerType, r.SuccessCriteria, r.CommonProblems, r.Tags,
		r.Description, r.Steps, r.Tools, r.Risks, r.Active, r.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting process: %w", err)
	}
	return &r, nil
}

// Get retrieves one record by ID, or nil if it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+` FROM processes WHERE id = ?`, id)
	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting process: %w", err)
	}
	return &r, nil
}

// Update overwrites the mutable fields of an existing record.
func (s *Store) Update(ctx context.Context, r Record) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE processes SET name = ?, category = ?, owner = ?, frequency = ?,
		 duration_minutes = ?, priority = ?, automation_readiness = ?, trigger_type = ?,
		 success_criteria = ?, common_problems = ?, tags = ?, description = ?,
		 steps = ?, tools = ?, risks = ? WHERE id = ?`,
		r.Name, r.Category, r.Owner, r.Frequency, r.DurationMinutes, r.Priority,
		r.AutomationReadiness, r.TriggerType, r.SuccessCriteria, r.CommonProblems,
		r.Tags, r.Description, r.Steps, r.Tools, r.Risks, r.ID,
	)
	if err != nil {
		return fmt.Errorf("updating process: %w", err)
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("process %s not found", r.ID)
	}
	return nil
}

// Deactivate soft-deletes a record. Records are never hard-deleted.
func (s *Store) Deactivate(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE processes SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deactivating process: %w", err)
	}
	return nil
}

// GetActiveProcesses returns all active records, most recently created
// first. Ties on the timestamp keep insertion order via rowid, so the
// retrieval order is stable.
func (s *Store) GetActiveProcesses(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM processes WHERE is_active = 1
		 ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying processes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning process: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// FindBySubstring returns active records where the text appears in the
// name, category, owner or tags, most recently created first.
func (s *Store) FindBySubstring(ctx context.Context, text string) ([]Record, error) {
	like := "%" + text + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM processes
		 WHERE (name LIKE ? OR category LIKE ? OR owner LIKE ? OR tags LIKE ?)
		 AND is_active = 1
		 ORDER BY created_at DESC, rowid DESC`,
		like, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("searching processes: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning process: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// AggregateCounts returns the total active process count and the
// per-category / per-owner breakdowns ordered by count descending.
// Empty category and owner values are excluded from the breakdowns,
// matching how they are presented to the user.
func (s *Store) AggregateCounts(ctx context.Context) (Counts, error) {
	var c Counts

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM processes WHERE is_active = 1`).Scan(&c.Total); err != nil {
		return Counts{}, fmt.Errorf("counting processes: %w", err)
	}

	var err error
	c.Categories, err = s.groupCounts(ctx, "category")
	if err != nil {
		return Counts{}, err
	}
	c.Owners, err = s.groupCounts(ctx, "owner")
	if err != nil {
		return Counts{}, err
	}
	return c, nil
}

func (s *Store) groupCounts(ctx context.Context, column string) ([]GroupCount, error) {
	// column is always a fixed identifier supplied by AggregateCounts.
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) as cnt FROM processes
		 WHERE is_active = 1 AND `+column+` != ''
		 GROUP BY `+column+`
		 ORDER BY cnt DESC, MAX(rowid) DESC`)
	if err != nil {
		return nil, fmt.Errorf("grouping by %s: %w", column, err)
	}
	defer rows.Close()

	var groups []GroupCount
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.Name, &g.Count); err != nil {
			return nil, fmt.Errorf("scanning %s group: %w", column, err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
