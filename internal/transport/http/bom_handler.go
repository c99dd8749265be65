// Package http exposes the BOM engine over JSON endpoints. It owns no
// business rules: requests are decoded, handed to usecases and queries, and
// domain errors are translated to status codes.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/light-bringer/bom-service/internal/app/bom/domain"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_bom_tree"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_costing"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_flat_bom"
	"github.com/light-bringer/bom-service/internal/app/bom/queries/get_where_used"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/add_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/archive_product"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/create_product"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/remove_component"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_component_quantity"
	"github.com/light-bringer/bom-service/internal/app/bom/usecases/update_pricing"
)

// BOMHandler serves the composition API.
type BOMHandler struct {
	createProduct   *create_product.Interactor
	updatePricing   *update_pricing.Interactor
	archiveProduct  *archive_product.Interactor
	addComponent    *add_component.Interactor
	updateQuantity  *update_component_quantity.Interactor
	removeComponent *remove_component.Interactor
	bomTree         *get_bom_tree.Query
	flatBOM         *get_flat_bom.Query
	costing         *get_costing.Query
	whereUsed       *get_where_used.Query

	maxDepth int
	logger   zerolog.Logger
}

// NewBOMHandler creates the handler.
func NewBOMHandler(
	createProduct *create_product.Interactor,
	updatePricing *update_pricing.Interactor,
	archiveProduct *archive_product.Interactor,
	addComponent *add_component.Interactor,
	updateQuantity *update_component_quantity.Interactor,
	removeComponent *remove_component.Interactor,
	bomTree *get_bom_tree.Query,
	flatBOM *get_flat_bom.Query,
	costing *get_costing.Query,
	whereUsed *get_where_used.Query,
	maxDepth int,
	logger zerolog.Logger,
) *BOMHandler {
	return &BOMHandler{
		createProduct:   createProduct,
		updatePricing:   updatePricing,
		archiveProduct:  archiveProduct,
		addComponent:    addComponent,
		updateQuantity:  updateQuantity,
		removeComponent: removeComponent,
		bomTree:         bomTree,
		flatBOM:         flatBOM,
		costing:         costing,
		whereUsed:       whereUsed,
		maxDepth:        maxDepth,
		logger:          logger,
	}
}

// Register mounts all routes on mux.
func (h *BOMHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/products", h.handleCreateProduct)
	mux.HandleFunc("PATCH /api/v1/products/{id}/pricing", h.handleUpdatePricing)
	mux.HandleFunc("DELETE /api/v1/products/{id}", h.handleArchiveProduct)
	mux.HandleFunc("POST /api/v1/products/{id}/components", h.handleAddComponent)
	mux.HandleFunc("PATCH /api/v1/components/{id}", h.handleUpdateComponent)
	mux.HandleFunc("DELETE /api/v1/components/{id}", h.handleRemoveComponent)
	mux.HandleFunc("GET /api/v1/products/{id}/bom/tree", h.handleBOMTree)
	mux.HandleFunc("GET /api/v1/products/{id}/bom/flat", h.handleFlatBOM)
	mux.HandleFunc("GET /api/v1/products/{id}/costing", h.handleCosting)
	mux.HandleFunc("GET /api/v1/products/{id}/where-used", h.handleWhereUsed)
}

func (h *BOMHandler) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	ucReq := &create_product.Request{
		Code:        req.Code,
		Name:        req.Name,
		ProductType: domain.ProductType(req.ProductType),
		PriceMode:   domain.PriceMode(req.PriceMode),
	}
	var err error
	if req.ManualCost != "" {
		if ucReq.ManualCost, err = parseMoney(req.ManualCost); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.ManualPrice != "" {
		if ucReq.ManualPrice, err = parseMoney(req.ManualPrice); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.UnitWeight != "" {
		if ucReq.UnitWeight, err = parseQuantity(req.UnitWeight); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	id, err := h.createProduct.Execute(r.Context(), ucReq)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, &createProductResponse{ProductID: id})
}

func (h *BOMHandler) handleUpdatePricing(w http.ResponseWriter, r *http.Request) {
	var req updatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	ucReq := &update_pricing.Request{ProductID: r.PathValue("id")}
	if req.PriceMode != nil {
		mode := domain.PriceMode(*req.PriceMode)
		ucReq.PriceMode = &mode
	}
	var err error
	if req.ManualCost != nil {
		if ucReq.ManualCost, err = parseMoney(*req.ManualCost); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.ManualPrice != nil {
		if ucReq.ManualPrice, err = parseMoney(*req.ManualPrice); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.UnitWeight != nil {
		if ucReq.UnitWeight, err = parseQuantity(*req.UnitWeight); err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := h.updatePricing.Execute(r.Context(), ucReq); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BOMHandler) handleArchiveProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.archiveProduct.Execute(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BOMHandler) handleAddComponent(w http.ResponseWriter, r *http.Request) {
	var req addComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	qty, err := parseQuantity(req.Quantity)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	component, err := h.addComponent.Execute(r.Context(), &add_component.Request{
		ParentID: r.PathValue("id"),
		ChildID:  req.ChildID,
		Quantity: qty,
		Sequence: req.Sequence,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toComponentResponse(component))
}

func (h *BOMHandler) handleUpdateComponent(w http.ResponseWriter, r *http.Request) {
	var req updateComponentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	qty, err := parseQuantity(req.Quantity)
	if err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	component, err := h.updateQuantity.Execute(r.Context(), &update_component_quantity.Request{
		ComponentID: r.PathValue("id"),
		Quantity:    qty,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toComponentResponse(component))
}

func (h *BOMHandler) handleRemoveComponent(w http.ResponseWriter, r *http.Request) {
	if err := h.removeComponent.Execute(r.Context(), r.PathValue("id")); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BOMHandler) handleBOMTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.bomTree.Execute(r.Context(), &get_bom_tree.Request{
		RootID:   r.PathValue("id"),
		MaxDepth: h.depthParam(r),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toBOMNodeResponse(tree))
}

func (h *BOMHandler) handleFlatBOM(w http.ResponseWriter, r *http.Request) {
	flat, err := h.flatBOM.Execute(r.Context(), &get_flat_bom.Request{
		RootID:   r.PathValue("id"),
		MaxDepth: h.depthParam(r),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toFlatResponse(flat))
}

func (h *BOMHandler) handleCosting(w http.ResponseWriter, r *http.Request) {
	result, err := h.costing.Execute(r.Context(), &get_costing.Request{
		ProductID: r.PathValue("id"),
		MaxDepth:  h.depthParam(r),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCostingResponse(result))
}

func (h *BOMHandler) handleWhereUsed(w http.ResponseWriter, r *http.Request) {
	usages, err := h.whereUsed.Execute(r.Context(), &get_where_used.Request{
		ChildID: r.PathValue("id"),
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toUsageResponses(usages))
}

// depthParam reads max_depth from the query, falling back to the configured
// service-wide bound.
func (h *BOMHandler) depthParam(r *http.Request) int {
	if v := r.URL.Query().Get("max_depth"); v != "" {
		if depth, err := strconv.Atoi(v); err == nil && depth > 0 {
			return depth
		}
	}
	return h.maxDepth
}

func (h *BOMHandler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (h *BOMHandler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		h.logger.Debug().Err(err).Str("path", r.URL.Path).Msg("request rejected")
	}
	h.writeError(w, r, status, publicMessage(err, status))
}

func (h *BOMHandler) writeError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
