package http

import (
	"fmt"
	"math/big"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_where_used"
)

// createProductRequest is the POST /products body. Amounts and the weight
// are decimal strings ("12.50") or fractions ("25/2").
type createProductRequest struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProductType string `json:"product_type"`
	PriceMode   string `json:"price_mode"`
	ManualCost  string `json:"manual_cost,omitempty"`
	ManualPrice string `json:"manual_price,omitempty"`
	UnitWeight  string `json:"unit_weight,omitempty"`
}

type createProductResponse struct {
	ProductID string `json:"product_id"`
}

// updatePricingRequest is the PATCH /products/{id}/pricing body. Absent
// fields stay unchanged.
type updatePricingRequest struct {
	PriceMode   *string `json:"price_mode,omitempty"`
	ManualCost  *string `json:"manual_cost,omitempty"`
	ManualPrice *string `json:"manual_price,omitempty"`
	UnitWeight  *string `json:"unit_weight,omitempty"`
}

// addComponentRequest is the POST /products/{id}/components body.
type addComponentRequest struct {
	ChildID  string `json:"child_id"`
	Quantity string `json:"quantity"`
	Sequence int64  `json:"sequence"`
}

// updateComponentRequest is the PATCH /components/{id} body.
type updateComponentRequest struct {
	Quantity string `json:"quantity"`
}

type componentResponse struct {
	ComponentID string `json:"component_id"`
	ParentID    string `json:"parent_id"`
	ChildID     string `json:"child_id"`
	Quantity    string `json:"quantity"`
	Sequence    int64  `json:"sequence"`
}

func toComponentResponse(c *domain.Component) *componentResponse {
	return &componentResponse{
		ComponentID: c.ID(),
		ParentID:    c.ParentID(),
		ChildID:     c.ChildID(),
		Quantity:    c.Quantity().String(),
		Sequence:    c.Sequence(),
	}
}

// bomNodeResponse is one node of the tree view.
type bomNodeResponse struct {
	ProductID   string             `json:"product_id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	ProductType string             `json:"product_type"`
	Quantity    string             `json:"quantity"`
	Children    []*bomNodeResponse `json:"children"`
}

func toBOMNodeResponse(n *domain.BOMNode) *bomNodeResponse {
	out := &bomNodeResponse{
		ProductID:   n.Product.ID(),
		Code:        n.Product.Code(),
		Name:        n.Product.Name(),
		ProductType: string(n.Product.Type()),
		Quantity:    n.OwnQuantity.String(),
		Children:    make([]*bomNodeResponse, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, toBOMNodeResponse(child))
	}
	return out
}

// flatLineResponse is one line of the flattened view.
type flatLineResponse struct {
	ProductID   string `json:"product_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	ProductType string `json:"product_type"`
	Total       string `json:"total_quantity"`
}

func toFlatResponse(flat domain.FlatBOM) []*flatLineResponse {
	lines := make([]*flatLineResponse, 0, len(flat))
	for _, line := range flat {
		lines = append(lines, &flatLineResponse{
			ProductID:   line.Product.ID(),
			Code:        line.Product.Code(),
			Name:        line.Product.Name(),
			ProductType: string(line.Product.Type()),
			Total:       line.Total.String(),
		})
	}
	return lines
}

// costingResponse carries the resolved values. Margin is null when the
// effective price is zero.
type costingResponse struct {
	ProductID     string  `json:"product_id"`
	EffectiveCost string  `json:"effective_cost"`
	EffectivePrice string `json:"effective_price"`
	MarginPercent *string `json:"margin_percent"`
	TotalWeight   string  `json:"total_weight"`
}

func toCostingResponse(r *get_costing.Result) *costingResponse {
	out := &costingResponse{
		ProductID:      r.ProductID,
		EffectiveCost:  r.Cost.String(),
		EffectivePrice: r.Price.String(),
		TotalWeight:    r.Weight.String(),
	}
	if r.MarginDefined {
		pct := new(big.Rat).Mul(r.Margin, big.NewRat(100, 1)).FloatString(2)
		out.MarginPercent = &pct
	}
	return out
}

// usageResponse is one where-used row.
type usageResponse struct {
	ParentID    string `json:"parent_id"`
	ParentCode  string `json:"parent_code"`
	ParentName  string `json:"parent_name"`
	ComponentID string `json:"component_id"`
	Quantity    string `json:"quantity"`
}

func toUsageResponses(usages []*get_where_used.Usage) []*usageResponse {
	out := make([]*usageResponse, 0, len(usages))
	for _, u := range usages {
		out = append(out, &usageResponse{
			ParentID:    u.Parent.ID(),
			ParentCode:  u.Parent.Code(),
			ParentName:  u.Parent.Name(),
			ComponentID: u.Component.ID(),
			Quantity:    u.Component.Quantity().String(),
		})
	}
	return out
}

// parseQuantity converts a decimal or fraction string into a Quantity.
func parseQuantity(s string) (*domain.Quantity, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	return domain.QuantityFromRat(rat), nil
}

// parseMoney converts a decimal or fraction string into a Money amount.
func parseMoney(s string) (*domain.Money, error) {
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return domain.MoneyFromRat(rat), nil
}
