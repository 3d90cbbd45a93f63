package main

import (
	"net/http"
	"strings"

	"github.com/villela/precificador/internal/model"
)

type materialsViewData struct {
	baseViewData
	Materials []model.Material
}

type materialFormViewData struct {
	baseViewData
	Title        string
	Action       string
	IsEdit       bool
	Material     model.Material
	MeasureTypes []model.MeasureType
}

var allMeasureTypes = []model.MeasureType{
	model.MeasureUnit,
	model.MeasureLength,
	model.MeasureArea,
	model.MeasureWeight,
}

func (s *server) handleMaterialsList(w http.ResponseWriter, r *http.Request) {
	materials, err := s.store.ListMaterials()
	if err != nil {
		s.log.Error("failed to load materials", "err", err)
		http.Error(w, "failed to load materials", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "materials.html", materialsViewData{
		baseViewData: flashFromQuery(r),
		Materials:    materials,
	})
}

func (s *server) handleMaterialAddForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "material_form.html", materialFormViewData{
		baseViewData: flashFromQuery(r),
		Title:        "Adicionar material",
		Action:       "/materiais/adicionar",
		MeasureTypes: allMeasureTypes,
	})
}

func (s *server) handleMaterialAddSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	note := strings.TrimSpace(r.FormValue("note"))

	rawType, err := parseInteger(r.FormValue("measure_type"), "tipo de medida")
	if err != nil {
		redirectFlash(w, r, "/materiais/adicionar", "error", err.Error())
		return
	}
	measureType, err := model.MeasureTypeFromInt(rawType)
	if err != nil {
		redirectFlash(w, r, "/materiais/adicionar", "error", "tipo de medida inválido")
		return
	}

	price, baseWidth, baseLength, err := parseMaterialNumbers(r)
	if err != nil {
		redirectFlash(w, r, "/materiais/adicionar", "error", err.Error())
		return
	}

	if _, err := s.store.AddMaterial(name, note, measureType, price, baseWidth, baseLength); err != nil {
		s.failStore(w, r, "/materiais/adicionar", err)
		return
	}

	redirectFlash(w, r, "/materiais", "success", "Material adicionado")
}

func (s *server) handleMaterialEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	material, err := s.store.GetMaterial(id)
	if err != nil {
		s.log.Error("failed to load material", "id", id, "err", err)
		http.Error(w, "failed to load material", http.StatusInternalServerError)
		return
	}
	if material == nil {
		http.NotFound(w, r)
		return
	}

	s.renderTemplate(w, "material_form.html", materialFormViewData{
		baseViewData: flashFromQuery(r),
		Title:        "Editar material",
		Action:       r.URL.Path,
		IsEdit:       true,
		Material:     *material,
	})
}

func (s *server) handleMaterialEditSubmit(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	note := strings.TrimSpace(r.FormValue("note"))

	price, baseWidth, baseLength, err := parseMaterialNumbers(r)
	if err != nil {
		redirectFlash(w, r, r.URL.Path, "error", err.Error())
		return
	}

	if err := s.store.UpdateMaterial(id, name, note, price, baseWidth, baseLength); err != nil {
		s.failStore(w, r, r.URL.Path, err)
		return
	}

	redirectFlash(w, r, "/materiais", "success", "Material atualizado")
}

func (s *server) handleMaterialRemove(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteMaterial(id); err != nil {
		s.failStore(w, r, "/materiais", err)
		return
	}

	redirectFlash(w, r, "/materiais", "success", "Material removido")
}

func parseMaterialNumbers(r *http.Request) (float64, *int64, *int64, error) {
	price, err := parseDecimal(r.FormValue("price"), "preço")
	if err != nil {
		return 0, nil, nil, err
	}
	baseWidth, err := parseOptionalInteger(r.FormValue("base_width"), "largura base")
	if err != nil {
		return 0, nil, nil, err
	}
	baseLength, err := parseOptionalInteger(r.FormValue("base_length"), "comprimento base")
	if err != nil {
		return 0, nil, nil, err
	}
	return price, baseWidth, baseLength, nil
}
