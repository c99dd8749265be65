package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/bom-service/internal/app/bom/contracts"
	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/models/m_product"
	"github.com/light-bringer/bom-service/internal/pkg/clock"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client *spanner.Client
	model  *m_product.Model
	clock  clock.Clock
}

// NewProductRepo creates a ProductRepo.
func NewProductRepo(client *spanner.Client, clk clock.Clock) contracts.ProductRepository {
	return &ProductRepo{
		client: client,
		model:  m_product.NewModel(),
		clock:  clk,
	}
}

// InsertMut builds the mutation inserting a new product.
func (r *ProductRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	data, err := r.domainToData(product)
	if err != nil {
		return nil, err
	}
	return r.model.InsertMut(data), nil
}

// UpdateMut builds the mutation updating a product's dirty fields. The row
// version is bumped so ApplyWithVersionCheck can detect concurrent writes.
func (r *ProductRepo) UpdateMut(product *domain.Product) (*spanner.Mutation, error) {
	changes := product.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldCode) {
		updates[m_product.Code] = product.Code()
	}
	if changes.Dirty(domain.FieldName) {
		updates[m_product.Name] = product.Name()
	}
	if changes.Dirty(domain.FieldProductType) {
		updates[m_product.ProductType] = string(product.Type())
	}
	if changes.Dirty(domain.FieldPriceMode) {
		updates[m_product.PriceMode] = string(product.PriceMode())
	}
	if changes.Dirty(domain.FieldManualCost) {
		cost := product.ManualCost()
		updates[m_product.ManualCostNumerator] = cost.Numerator()
		updates[m_product.ManualCostDenominator] = cost.Denominator()
	}
	if changes.Dirty(domain.FieldManualPrice) {
		price := product.ManualPrice()
		updates[m_product.ManualPriceNumerator] = price.Numerator()
		updates[m_product.ManualPriceDenominator] = price.Denominator()
	}
	if changes.Dirty(domain.FieldUnitWeight) {
		weight := product.UnitWeight()
		updates[m_product.UnitWeightNumerator] = weight.Numerator()
		updates[m_product.UnitWeightDenominator] = weight.Denominator()
	}
	if changes.Dirty(domain.FieldIsActive) {
		updates[m_product.IsActive] = product.IsActive()
	}
	if changes.Dirty(domain.FieldArchivedAt) {
		if archivedAt := product.ArchivedAt(); archivedAt != nil {
			updates[m_product.ArchivedAt] = spanner.NullTime{Time: *archivedAt, Valid: true}
		} else {
			updates[m_product.ArchivedAt] = spanner.NullTime{}
		}
	}

	if len(updates) == 0 {
		return nil, nil
	}

	updates[m_product.Version] = product.Version() + 1

	return r.model.UpdateMut(product.ID(), updates), nil
}

// GetByID loads a product aggregate.
func (r *ProductRepo) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns)
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

	return dataToProduct(&data, r.clock)
}

// Exists reports whether a product row is present.
func (r *ProductRepo) Exists(ctx context.Context, productID string) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

// domainToData converts a domain Product to database Data.
func (r *ProductRepo) domainToData(product *domain.Product) (*m_product.Data, error) {
	cost := product.ManualCost()
	price := product.ManualPrice()
	weight := product.UnitWeight()

	data := &m_product.Data{
		ProductID:              product.ID(),
		Code:                   product.Code(),
		Name:                   product.Name(),
		ProductType:            string(product.Type()),
		PriceMode:              string(product.PriceMode()),
		ManualCostNumerator:    cost.Numerator(),
		ManualCostDenominator:  cost.Denominator(),
		ManualPriceNumerator:   price.Numerator(),
		ManualPriceDenominator: price.Denominator(),
		UnitWeightNumerator:    weight.Numerator(),
		UnitWeightDenominator:  weight.Denominator(),
		IsActive:               product.IsActive(),
		Version:                product.Version(),
		CreatedAt:              product.CreatedAt(),
		UpdatedAt:              product.UpdatedAt(),
	}

	if archivedAt := product.ArchivedAt(); archivedAt != nil {
		data.ArchivedAt = spanner.NullTime{Time: *archivedAt, Valid: true}
	}

	return data, nil
}

// dataToProduct converts database Data to a domain Product.
func dataToProduct(data *m_product.Data, clk clock.Clock) (*domain.Product, error) {
	cost, err := domain.NewMoney(data.ManualCostNumerator, data.ManualCostDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid manual cost: %w", err)
	}
	price, err := domain.NewMoney(data.ManualPriceNumerator, data.ManualPriceDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid manual price: %w", err)
	}
	weight, err := domain.NewQuantity(data.UnitWeightNumerator, data.UnitWeightDenominator)
	if err != nil {
		return nil, fmt.Errorf("invalid unit weight: %w", err)
	}

	var archivedAt *time.Time
	if data.ArchivedAt.Valid {
		t := data.ArchivedAt.Time
		archivedAt = &t
	}

	return domain.ReconstructProduct(
		data.ProductID,
		data.Code,
		data.Name,
		domain.ProductType(data.ProductType),
		domain.PriceMode(data.PriceMode),
		cost,
		price,
		weight,
		data.IsActive,
		data.Version,
		data.CreatedAt,
		data.UpdatedAt,
		archivedAt,
		clk,
	), nil
}
