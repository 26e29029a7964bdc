package projectstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"cutline/internal/timeline"
)

// ErrProjectNotFound is returned by operations naming a project id that does
// not exist in the library.
var ErrProjectNotFound = errors.New("project not found")

// Project is one stored editing project.
type Project struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Timeline  *timeline.Timeline
}

// Summary is the listing view of a project, without the timeline payload.
type Summary struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Create inserts a new project. A nil timeline stores an empty document whose
// projectId matches the new row.
func (s *Store) Create(ctx context.Context, name string, tl *timeline.Timeline) (*Project, error) {
	if name == "" {
		return nil, errors.New("project name is required")
	}

	id := uuid.NewString()
	if tl == nil {
		tl = &timeline.Timeline{ProjectID: id, Clips: []timeline.Clip{}}
	} else {
		tl = tl.Clone()
		tl.ProjectID = id
	}
	payload, err := json.Marshal(tl)
	if err != nil {
		return nil, fmt.Errorf("marshal timeline: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO projects (id, name, created_at, updated_at, timeline_json) VALUES (?, ?, ?, ?, ?)`,
		id, name, now, now, string(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return s.Get(ctx, id)
}

// Get fetches a project by id, or nil when the id is unknown.
func (s *Store) Get(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at, updated_at, timeline_json FROM projects WHERE id = ?`, id)

	var project Project
	var createdAt, updatedAt string
	var payload sql.NullString
	err := row.Scan(&project.ID, &project.Name, &createdAt, &updatedAt, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	if project.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if project.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	if payload.Valid && payload.String != "" {
		var tl timeline.Timeline
		if err := json.Unmarshal([]byte(payload.String), &tl); err != nil {
			return nil, fmt.Errorf("decode timeline: %w", err)
		}
		project.Timeline = &tl
	}

	return &project, nil
}

// SaveTimeline replaces the project's timeline document and bumps its
// updated_at timestamp.
func (s *Store) SaveTimeline(ctx context.Context, id string, tl *timeline.Timeline) error {
	payload, err := json.Marshal(tl)
	if err != nil {
		return fmt.Errorf("marshal timeline: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET timeline_json = ?, updated_at = ? WHERE id = ?`,
		string(payload), now, id,
	)
	if err != nil {
		return fmt.Errorf("save timeline: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return nil
}

// Rename changes a project's display name.
func (s *Store) Rename(ctx context.Context, id, name string) error {
	if name == "" {
		return errors.New("project name is required")
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	res, err := s.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, updated_at = ? WHERE id = ?`, name, now, id)
	if err != nil {
		return fmt.Errorf("rename project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return nil
}

// Delete removes a project. Deleting an unknown id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// List returns all projects ordered by name, using a locale-aware,
// case-insensitive comparison so "beta" sorts beside "Beta".
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at, updated_at FROM projects`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var summary Summary
		var createdAt, updatedAt string
		if err := rows.Scan(&summary.ID, &summary.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if summary.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		if summary.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return nil, fmt.Errorf("parse updated_at: %w", err)
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	collator := collate.New(language.Und, collate.Loose)
	sort.SliceStable(summaries, func(i, j int) bool {
		return collator.CompareString(summaries[i].Name, summaries[j].Name) < 0
	})
	return summaries, nil
}
