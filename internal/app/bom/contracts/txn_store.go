package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/bom-service/internal/app/bom/engine"
)

// TxnStoreFactory binds a hierarchy reader to a read-write transaction.
// The add-component usecase uses it so the cycle check reads the same
// transactional view the insert will write into.
type TxnStoreFactory interface {
	Bind(txn *spanner.ReadWriteTransaction) engine.HierarchyReader
}
