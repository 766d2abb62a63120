package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/pkg/composables"
)

type ProjectRepository struct{}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) (uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	if err := tx.QueryRow(ctx, `
INSERT INTO projects (name, type, author_id, company_code)
VALUES ($1, $2, $3, $4)
RETURNING id
`, p.Name, string(p.Type), p.AuthorID, p.CompanyCode).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var p project.Project
	err = tx.QueryRow(ctx, `
SELECT id, name, type, author_id, company_code, registered_at
FROM projects
WHERE id = $1
`, id).Scan(&p.ID, &p.Name, &p.Type, &p.AuthorID, &p.CompanyCode, &p.RegisteredAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, project.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) UpdateType(ctx context.Context, id uuid.UUID, t project.Type) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `UPDATE projects SET type = $2 WHERE id = $1`, id, string(t))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}
	return nil
}
