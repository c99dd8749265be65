package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/models/m_component"
	"github.com/light-bringer/bom-service/internal/models/m_product"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
	"github.com/light-bringer/bom-service/internal/pkg/query"
)

// rowReader is the read surface shared by single-use read-only transactions
// and read-write transactions. It lets the same HierarchyStore serve ordinary
// resolution calls and the in-transaction cycle check.
type rowReader interface {
	ReadRow(ctx context.Context, table string, key spanner.Key, columns []string) (*spanner.Row, error)
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// HierarchyStore implements engine.HierarchyReader over Spanner.
type HierarchyStore struct {
	client *spanner.Client
	txn    *spanner.ReadWriteTransaction
	clock  clock.Clock
}

// NewHierarchyStore creates a store reading through fresh single-use
// read-only transactions, one per read.
func NewHierarchyStore(client *spanner.Client, clk clock.Clock) *HierarchyStore {
	return &HierarchyStore{client: client, clock: clk}
}

// NewTxnHierarchyStore creates a store bound to a read-write transaction.
// Reads through it see the transaction's own view, so a cycle check and the
// component insert it protects land in one transaction.
func NewTxnHierarchyStore(txn *spanner.ReadWriteTransaction, clk clock.Clock) *HierarchyStore {
	return &HierarchyStore{txn: txn, clock: clk}
}

func (s *HierarchyStore) reader() rowReader {
	if s.txn != nil {
		return s.txn
	}
	return s.client.Single()
}

// GetProduct loads a product or domain.ErrProductNotFound.
func (s *HierarchyStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	row, err := s.reader().ReadRow(ctx, m_product.TableName, spanner.Key{id}, m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToProduct(&data, s.clock)
}

// ListComponents returns the outgoing edges of a parent, ordered by sequence.
func (s *HierarchyStore) ListComponents(ctx context.Context, parentID string) ([]*domain.Component, error) {
	stmt := query.From(m_component.TableName).
		Select(m_component.Columns...).
		Where(query.Eq(m_component.ParentID, parentID)).
		OrderBy(m_component.Sequence, query.Asc).
		Build()

	iter := s.reader().Query(ctx, stmt)
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
