package repository

import (
	"context"
	"time"

	"rfq_console/internal/domain/entities"
	"rfq_console/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkspacesTableName = "workspaces"

type workspaceItem struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	RoleID    int             `json:"role_id"`
	RFQID     int64           `json:"rfq_id"`
	RFQName   string          `json:"rfq_name"`
	Stage     int             `json:"stage"`
	Version   int             `json:"version"`
	SKUs      []entities.SKU  `json:"skus"`
	Editor    entities.Editor `json:"editor"`
	Message   string          `json:"message,omitempty"`
	UpdatedAt string          `json:"updated_at"`
}

// WorkspaceDynamoRepository persists per-user RFQ workspaces in DynamoDB.
//
// Table requirements:
//   - PK: id (string), "<user_id>#<rfq_id>"
//
// SKU list and editor session are nested list/map attributes; they are always
// read and written as a whole.
type WorkspaceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkspaceRepository = (*WorkspaceDynamoRepository)(nil)

func NewWorkspaceDynamoRepository(ddb *dynamodb.Client, tableName string) *WorkspaceDynamoRepository {
	if tableName == "" {
		tableName = defaultWorkspacesTableName
	}
	return &WorkspaceDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkspaceDynamoRepository) Save(ctx context.Context, w entities.Workspace) (entities.Workspace, error) {
	av, err := marshalItem(toWorkspaceItem(w))
	if err != nil {
		return entities.Workspace{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Workspace{}, err
	}
	return w, nil
}

// GetByID returns the zero Workspace when id is not stored.
func (r *WorkspaceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Workspace, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Workspace{}, err
	}
	if len(out.Item) == 0 {
		return entities.Workspace{}, nil
	}

	var it workspaceItem
	if err := unmarshalItem(out.Item, &it); err != nil {
		return entities.Workspace{}, err
	}
	return fromWorkspaceItem(it), nil
}

func toWorkspaceItem(w entities.Workspace) workspaceItem {
	return workspaceItem{
		ID:        w.ID,
		UserID:    w.UserID,
		RoleID:    int(w.RoleID),
		RFQID:     w.RFQ.ID,
		RFQName:   w.RFQ.Name,
		Stage:     int(w.RFQ.Stage),
		Version:   w.RFQ.Version,
		SKUs:      w.SKUs,
		Editor:    w.Editor,
		Message:   w.Message,
		UpdatedAt: w.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromWorkspaceItem(it workspaceItem) entities.Workspace {
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	w := entities.Workspace{
		ID:     it.ID,
		UserID: it.UserID,
		RoleID: entities.Role(it.RoleID),
		RFQ: entities.RFQ{
			ID:      it.RFQID,
			Name:    it.RFQName,
			Stage:   entities.Stage(it.Stage),
			Version: it.Version,
		},
		SKUs:      it.SKUs,
		Editor:    it.Editor,
		Message:   it.Message,
		UpdatedAt: updatedAt,
	}
	if w.SKUs == nil {
		w.SKUs = []entities.SKU{}
	}
	if w.Editor.Status == "" {
		w.Editor = entities.ClosedEditor()
	}
	return w
}
