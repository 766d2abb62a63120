package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/composables"
)

const workItemColumns = `id, project_id, content, deadline, status, progress, parent_id, rank, author_id, registered_at, completed_at`

type WorkItemRepository struct{}

func NewWorkItemRepository() *WorkItemRepository {
	return &WorkItemRepository{}
}

func (r *WorkItemRepository) Create(ctx context.Context, item *workitem.WorkItem) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, `
INSERT INTO work_items (project_id, content, deadline, status, progress, parent_id, rank, author_id, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`,
		item.ProjectID,
		item.Content,
		item.Deadline,
		string(item.Status),
		item.Progress,
		item.ParentID,
		item.Order,
		item.AuthorID,
		item.CompletedAt,
	).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *WorkItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*workitem.WorkItem, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow(ctx, `SELECT `+workItemColumns+` FROM work_items WHERE id = $1`, id)
	item, err := scanWorkItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, workitem.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *WorkItemRepository) GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]workitem.WorkItem, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+workItemColumns+`
FROM work_items
WHERE project_id = $1
ORDER BY rank, registered_at, id
`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]workitem.WorkItem, 0, 16)
	for rows.Next() {
		item, err := scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *WorkItemRepository) Update(ctx context.Context, item *workitem.WorkItem) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
UPDATE work_items
SET content = $2, deadline = $3, status = $4, progress = $5, completed_at = $6
WHERE id = $1
`,
		item.ID,
		item.Content,
		item.Deadline,
		string(item.Status),
		item.Progress,
		item.CompletedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workitem.ErrNotFound
	}
	return nil
}

func (r *WorkItemRepository) UpdateStructure(ctx context.Context, projectID uuid.UUID, d workitem.StructureDirective) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	tag, err := tx.Exec(ctx, `
UPDATE work_items
SET parent_id = $3, rank = $4
WHERE id = $1 AND project_id = $2
`, d.ID, projectID, d.ParentID, d.Order)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *WorkItemRepository) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM work_items WHERE id = $1 AND project_id = $2`, id, projectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return workitem.ErrNotFound
	}
	return nil
}

func (r *WorkItemRepository) CountByProject(ctx context.Context, projectID uuid.UUID) (workitem.ProjectCounts, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return workitem.ProjectCounts{}, err
	}

	var counts workitem.ProjectCounts
	err = tx.QueryRow(ctx, `
SELECT count(*), count(*) FILTER (WHERE status = $2 OR progress = 100)
FROM work_items
WHERE project_id = $1
`, projectID, string(workitem.StatusDone)).Scan(&counts.Total, &counts.Done)
	if err != nil {
		return workitem.ProjectCounts{}, err
	}
	return counts, nil
}

func scanWorkItem(row pgx.Row) (*workitem.WorkItem, error) {
	var item workitem.WorkItem
	err := row.Scan(
		&item.ID,
		&item.ProjectID,
		&item.Content,
		&item.Deadline,
		&item.Status,
		&item.Progress,
		&item.ParentID,
		&item.Order,
		&item.AuthorID,
		&item.RegisteredAt,
		&item.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
