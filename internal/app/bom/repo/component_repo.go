package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/models/m_component"
	"github.com/light-bringer/bom-service/internal/pkg/query"
)

// ComponentRepo implements ComponentRepository for Spanner.
type ComponentRepo struct {
	client *spanner.Client
	model  *m_component.Model
}

// NewComponentRepo creates a ComponentRepo.
func NewComponentRepo(client *spanner.Client) contracts.ComponentRepository {
	return &ComponentRepo{
		client: client,
		model:  m_component.NewModel(),
	}
}

// InsertMut builds the mutation inserting a new edge.
func (r *ComponentRepo) InsertMut(component *domain.Component) (*spanner.Mutation, error) {
	qty := component.Quantity()
	data := &m_component.Data{
		ComponentID:         component.ID(),
		ParentID:            component.ParentID(),
		ChildID:             component.ChildID(),
		QuantityNumerator:   qty.Numerator(),
		QuantityDenominator: qty.Denominator(),
		Sequence:            component.Sequence(),
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut builds the mutation updating an edge's dirty fields.
func (r *ComponentRepo) UpdateMut(component *domain.Component) (*spanner.Mutation, error) {
	changes := component.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldQuantity) {
		qty := component.Quantity()
		updates[m_component.QuantityNumerator] = qty.Numerator()
		updates[m_component.QuantityDenominator] = qty.Denominator()
	}
	if changes.Dirty(domain.FieldSequence) {
		updates[m_component.Sequence] = component.Sequence()
	}

	if len(updates) == 0 {
		return nil, nil
	}

	return r.model.UpdateMut(component.ID(), updates), nil
}

// DeleteMut builds the mutation removing an edge.
func (r *ComponentRepo) DeleteMut(componentID string) *spanner.Mutation {
	return r.model.DeleteMut(componentID)
}

// GetByID loads a component edge.
func (r *ComponentRepo) GetByID(ctx context.Context, componentID string) (*domain.Component, error) {
	row, err := r.client.Single().ReadRow(ctx, m_component.TableName, spanner.Key{componentID}, m_component.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrComponentNotFound
		}
		return nil, fmt.Errorf("failed to read component: %w", err)
	}

	var data m_component.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse component: %w", err)
	}

	return dataToComponent(&data)
}

// ListByParent returns the outgoing edges of a parent, ordered by sequence.
func (r *ComponentRepo) ListByParent(ctx context.Context, parentID string) ([]*domain.Component, error) {
	stmt := query.From(m_component.TableName).
		Select(m_component.Columns...).
		Where(query.Eq(m_component.ParentID, parentID)).
		OrderBy(m_component.Sequence, query.Asc).
		Build()
	return r.queryComponents(ctx, stmt)
}

// ListByChild returns the incoming edges of a child (where-used).
func (r *ComponentRepo) ListByChild(ctx context.Context, childID string) ([]*domain.Component, error) {
	stmt := query.From(m_component.TableName).
		Select(m_component.Columns...).
		Where(query.Eq(m_component.ChildID, childID)).
		OrderBy(m_component.ParentID, query.Asc).
		Build()
	return r.queryComponents(ctx, stmt)
}

func (r *ComponentRepo) queryComponents(ctx context.Context, stmt spanner.Statement) ([]*domain.Component, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	components := make([]*domain.Component, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to query components: %w", err)
		}

		var data m_component.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse component: %w", err)
		}
		component, err := dataToComponent(&data)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}

// dataToComponent converts database Data to a domain Component.
func dataToComponent(data *m_component.Data) (*domain.Component, error) {
	qty, err := domain.NewQuantity(data.QuantityNumerator, data.QuantityDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid component quantity: %w", err)
	}
	return domain.ReconstructComponent(
		data.ComponentID,
		data.ParentID,
		data.ChildID,
		qty,
		data.Sequence,
		data.CreatedAt,
		data.UpdatedAt,
	), nil
}
