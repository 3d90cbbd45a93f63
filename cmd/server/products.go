package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/villela/precificador/internal/model"
	"github.com/villela/precificador/internal/pricing"
	"github.com/villela/precificador/internal/store"
)

type productsViewData struct {
	baseViewData
	Products []model.ProductSummary
}

type productLineForm struct {
	MaterialID int64
	Quantity   string
}

type productFormViewData struct {
	baseViewData
	Title         string
	Action        string
	IsEdit        bool
	Name          string
	Description   string
	MinutesNeeded int
	ProfitPercent int
	Lines         []productLineForm
	Materials     []model.Material
}

type productDetailViewData struct {
	baseViewData
	Product   model.Product
	Breakdown pricing.Breakdown
}

func (s *server) handleProductsList(w http.ResponseWriter, r *http.Request) {
	products, err := s.store.ListProductSummaries()
	if err != nil {
		s.log.Error("failed to load products", "err", err)
		http.Error(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "products.html", productsViewData{
		baseViewData: flashFromQuery(r),
		Products:     products,
	})
}

func (s *server) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := s.store.GetProduct(id)
	if err != nil {
		s.log.Error("failed to load product", "id", id, "err", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	info, err := s.store.SalaryInfo()
	if err != nil {
		s.log.Error("failed to load salary info", "err", err)
		http.Error(w, "failed to load salary info", http.StatusInternalServerError)
		return
	}

	costs, err := s.store.ListCosts()
	if err != nil {
		s.log.Error("failed to load costs", "err", err)
		http.Error(w, "failed to load costs", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "product_detail.html", productDetailViewData{
		baseViewData: flashFromQuery(r),
		Product:      *product,
		Breakdown:    pricing.Calculate(*product, info, costs),
	})
}

func (s *server) handleProductAddForm(w http.ResponseWriter, r *http.Request) {
	materials, err := s.store.ListMaterials()
	if err != nil {
		s.log.Error("failed to load materials", "err", err)
		http.Error(w, "failed to load materials", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "product_form.html", productFormViewData{
		baseViewData: flashFromQuery(r),
		Title:        "Adicionar produto",
		Action:       "/produtos/adicionar",
		Lines:        []productLineForm{{}},
		Materials:    materials,
	})
}

func (s *server) handleProductAddSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	input, err := parseProductForm(r)
	if err != nil {
		redirectFlash(w, r, "/produtos/adicionar", "error", err.Error())
		return
	}

	id, err := s.store.AddProduct(input)
	if err != nil {
		s.failStore(w, r, "/produtos/adicionar", err)
		return
	}

	redirectFlash(w, r, fmt.Sprintf("/produtos/%d", id), "success", "Produto adicionado")
}

func (s *server) handleProductEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := s.store.GetProduct(id)
	if err != nil {
		s.log.Error("failed to load product", "id", id, "err", err)
		http.Error(w, "failed to load product", http.StatusInternalServerError)
		return
	}
	if product == nil {
		http.NotFound(w, r)
		return
	}

	materials, err := s.store.ListMaterials()
	if err != nil {
		s.log.Error("failed to load materials", "err", err)
		http.Error(w, "failed to load materials", http.StatusInternalServerError)
		return
	}

	lines := make([]productLineForm, 0, len(product.Materials))
	for _, item := range product.Materials {
		lines = append(lines, productLineForm{
			MaterialID: item.MaterialID,
			Quantity:   quantitySpec(item),
		})
	}
	if len(lines) == 0 {
		lines = []productLineForm{{}}
	}

	s.renderTemplate(w, "product_form.html", productFormViewData{
		baseViewData:  flashFromQuery(r),
		Title:         "Editar produto",
		Action:        r.URL.Path,
		IsEdit:        true,
		Name:          product.Name,
		Description:   product.Description,
		MinutesNeeded: product.MinutesNeeded,
		ProfitPercent: product.ProfitPercent,
		Lines:         lines,
		Materials:     materials,
	})
}

func (s *server) handleProductEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	input, err := parseProductForm(r)
	if err != nil {
		redirectFlash(w, r, r.URL.Path, "error", err.Error())
		return
	}

	if err := s.store.EditProduct(id, input); err != nil {
		s.failStore(w, r, r.URL.Path, err)
		return
	}

	redirectFlash(w, r, fmt.Sprintf("/produtos/%d", id), "success", "Produto atualizado")
}

func (s *server) handleProductRemove(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteProduct(id); err != nil {
		s.failStore(w, r, "/produtos", err)
		return
	}

	redirectFlash(w, r, "/produtos", "success", "Produto removido")
}

// parseProductForm reads the scalar fields plus the parallel material_id /
// quantity arrays from the line-item rows. Rows with no material selected
// are skipped.
func parseProductForm(r *http.Request) (store.ProductInput, error) {
	var input store.ProductInput

	input.Name = strings.TrimSpace(r.FormValue("name"))
	input.Description = strings.TrimSpace(r.FormValue("description"))

	minutes, err := parseInteger(r.FormValue("minutes_needed"), "tempo de produção")
	if err != nil {
		return input, err
	}
	profit, err := parseInteger(r.FormValue("profit"), "lucro")
	if err != nil {
		return input, err
	}
	input.MinutesNeeded = minutes
	input.ProfitPercent = profit

	materialIDs := r.PostForm["material_id"]
	quantities := r.PostForm["quantity"]
	if len(materialIDs) != len(quantities) {
		return input, fmt.Errorf("lista de materiais inconsistente")
	}

	for i, rawID := range materialIDs {
		if strings.TrimSpace(rawID) == "" {
			continue
		}
		materialID, err := parseOptionalInteger(rawID, "material")
		if err != nil {
			return input, err
		}
		input.Materials = append(input.Materials, store.ProductMaterialInput{
			MaterialID: *materialID,
			Quantity:   strings.TrimSpace(quantities[i]),
		})
	}

	return input, nil
}

// quantitySpec renders a line item's stored quantities back into the form
// notation: "WxL" for area, a plain number otherwise.
func quantitySpec(item model.LineItem) string {
	if item.Kind == model.MeasureArea {
		return fmt.Sprintf("%gx%g", item.Width, item.Length)
	}
	return fmt.Sprintf("%g", item.Quantity)
}
