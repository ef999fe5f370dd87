package interfaces

import (
	"context"
	"rfq_console/internal/domain/entities"
)

// IWorkspaceRepository abstracts DynamoDB persistence for Workspace.
//
// GetByID returns a zero Workspace (empty ID) when nothing is stored.

type IWorkspaceRepository interface {
	Save(ctx context.Context, w entities.Workspace) (entities.Workspace, error)
	GetByID(ctx context.Context, id string) (entities.Workspace, error)
}
