package main

import (
	"net/http"
	"strings"

	"github.com/villela/precificador/internal/model"
)

type costsViewData struct {
	baseViewData
	Costs      []model.MonthlyCost
	SalaryInfo model.SalaryInfo
}

type costFormViewData struct {
	baseViewData
	Title  string
	Action string
	Name   string
	Value  float64
}

func (s *server) handleCostsList(w http.ResponseWriter, r *http.Request) {
	costs, err := s.store.ListCosts()
	if err != nil {
		s.log.Error("failed to load costs", "err", err)
		http.Error(w, "failed to load costs", http.StatusInternalServerError)
		return
	}

	info, err := s.store.SalaryInfo()
	if err != nil {
		s.log.Error("failed to load salary info", "err", err)
		http.Error(w, "failed to load salary info", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "costs.html", costsViewData{
		baseViewData: flashFromQuery(r),
		Costs:        costs,
		SalaryInfo:   info,
	})
}

func (s *server) handleCostAddForm(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "cost_form.html", costFormViewData{
		baseViewData: flashFromQuery(r),
		Title:        "Adicionar custo",
		Action:       "/custos/adicionar",
	})
}

func (s *server) handleCostAddSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	value, err := parseDecimal(r.FormValue("value"), "valor")
	if err != nil {
		redirectFlash(w, r, "/custos/adicionar", "error", err.Error())
		return
	}

	if _, err := s.store.AddCost(name, value); err != nil {
		s.failStore(w, r, "/custos/adicionar", err)
		return
	}

	redirectFlash(w, r, "/custos", "success", "Custo adicionado")
}

func (s *server) handleCostEditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cost, err := s.store.GetCost(id)
	if err != nil {
		s.log.Error("failed to load cost", "id", id, "err", err)
		http.Error(w, "failed to load cost", http.StatusInternalServerError)
		return
	}
	if cost == nil {
		http.NotFound(w, r)
		return
	}

	s.renderTemplate(w, "cost_form.html", costFormViewData{
		baseViewData: flashFromQuery(r),
		Title:        "Editar custo",
		Action:       r.URL.Path,
		Name:         cost.Name,
		Value:        cost.Value,
	})
}

func (s *server) handleCostEditSubmit(w http.ResponseWriter, r *http.Request) {
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
	value, err := parseDecimal(r.FormValue("value"), "valor")
	if err != nil {
		redirectFlash(w, r, r.URL.Path, "error", err.Error())
		return
	}

	if err := s.store.UpdateCost(id, name, value); err != nil {
		s.failStore(w, r, r.URL.Path, err)
		return
	}

	redirectFlash(w, r, "/custos", "success", "Custo atualizado")
}

func (s *server) handleCostRemove(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.store.DeleteCost(id); err != nil {
		s.failStore(w, r, "/custos", err)
		return
	}

	redirectFlash(w, r, "/custos", "success", "Custo removido")
}
