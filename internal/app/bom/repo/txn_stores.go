package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/engine"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
)

// TxnStores implements contracts.TxnStoreFactory.
type TxnStores struct {
	clock clock.Clock
}

// NewTxnStores creates the factory.
func NewTxnStores(clk clock.Clock) contracts.TxnStoreFactory {
	return &TxnStores{clock: clk}
}

// Bind returns a hierarchy reader scoped to txn.
func (f *TxnStores) Bind(txn *spanner.ReadWriteTransaction) engine.HierarchyReader {
	return NewTxnHierarchyStore(txn, f.clock)
}
