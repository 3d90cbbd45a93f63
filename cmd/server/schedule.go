package main

import (
	"net/http"

	"github.com/villela/precificador/internal/model"
)

type scheduleViewData struct {
	baseViewData
	Salary float64
	Days   [7]model.WorkDay
}

// weekdayFields maps form field names to week positions, Sunday first. The
// order must match the store's weekday layout.
var weekdayFields = [7]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

func (s *server) handleScheduleForm(w http.ResponseWriter, r *http.Request) {
	info, err := s.store.SalaryInfo()
	if err != nil {
		s.log.Error("failed to load salary info", "err", err)
		http.Error(w, "failed to load salary info", http.StatusInternalServerError)
		return
	}

	s.renderTemplate(w, "salary_form.html", scheduleViewData{
		baseViewData: flashFromQuery(r),
		Salary:       info.Salary,
		Days:         info.Week.Days,
	})
}

func (s *server) handleScheduleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	salary, minutes, err := parseScheduleForm(r)
	if err != nil {
		redirectFlash(w, r, "/jornada/editar", "error", err.Error())
		return
	}

	if err := s.store.UpdateSalaryInfo(salary, minutes); err != nil {
		s.log.Error("failed to update salary info", "err", err)
		http.Error(w, "failed to update salary info", http.StatusInternalServerError)
		return
	}

	redirectFlash(w, r, "/custos", "success", "Jornada atualizada")
}

func parseScheduleForm(r *http.Request) (float64, [7]int, error) {
	var minutes [7]int

	salary, err := parseDecimal(r.FormValue("salary"), "salário")
	if err != nil {
		return 0, minutes, err
	}

	for i, field := range weekdayFields {
		m, err := parseInteger(r.FormValue(field), weekdayLabel(model.Weekday(i)))
		if err != nil {
			return 0, minutes, err
		}
		minutes[i] = m
	}

	return salary, minutes, nil
}
