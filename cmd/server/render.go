package main

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/villela/precificador/internal/model"
	"github.com/villela/precificador/internal/pricing"
	"github.com/villela/precificador/internal/store"
)

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

func flashFromQuery(r *http.Request) baseViewData {
	return baseViewData{
		ErrorMessage:   r.URL.Query().Get("error"),
		SuccessMessage: r.URL.Query().Get("success"),
	}
}

var templateFuncs = template.FuncMap{
	"money": func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	},
	"weekday":  weekdayLabel,
	"measure":  measureLabel,
	"lineCost": pricing.LineItemCost,
}

func weekdayLabel(d model.Weekday) string {
	switch d {
	case model.Sunday:
		return "Domingo"
	case model.Monday:
		return "Segunda-feira"
	case model.Tuesday:
		return "Terça-feira"
	case model.Wednesday:
		return "Quarta-feira"
	case model.Thursday:
		return "Quinta-feira"
	case model.Friday:
		return "Sexta-feira"
	case model.Saturday:
		return "Sábado"
	default:
		return ""
	}
}

func measureLabel(t model.MeasureType) string {
	switch t {
	case model.MeasureUnit:
		return "Unidade"
	case model.MeasureLength:
		return "Comprimento (cm)"
	case model.MeasureArea:
		return "Área"
	case model.MeasureWeight:
		return "Peso"
	default:
		return ""
	}
}

func (s *server) renderTemplate(w http.ResponseWriter, page string, data any) {
	templates, err := template.New("layout.html").Funcs(templateFuncs).ParseFiles(
		"web/templates/layout.html",
		"web/templates/"+page,
	)
	if err != nil {
		s.log.Error("failed to parse template", "page", page, "err", err)
		http.Error(w, "failed to parse template", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "layout.html", data); err != nil {
		s.log.Error("failed to render template", "page", page, "err", err)
		http.Error(w, "failed to render template", http.StatusInternalServerError)
		return
	}
}

// redirectFlash sends the browser back to base with a flash message in the
// query string, the same way the catalog pages report results.
func redirectFlash(w http.ResponseWriter, r *http.Request, base, kind, message string) {
	http.Redirect(w, r, base+"?"+kind+"="+url.QueryEscape(message), http.StatusSeeOther)
}

// userMessage translates recoverable store errors into a user-facing flash
// message. Anything else is an internal failure.
func userMessage(err error) (string, bool) {
	var validation store.ValidationError
	if errors.As(err, &validation) {
		return validation.Msg, true
	}

	var quantity store.QuantitySpecError
	if errors.As(err, &quantity) {
		return fmt.Sprintf("quantidade inválida %q: use um número ou LARGURAxCOMPRIMENTO", quantity.Spec), true
	}

	switch {
	case errors.Is(err, store.ErrMaterialInUse):
		return "o material está em uso por um produto e não pode ser removido", true
	case errors.Is(err, store.ErrNotFound):
		return "registro não encontrado", true
	}
	return "", false
}

// failStore reports a store error: recoverable ones become a flash redirect,
// the rest a 500.
func (s *server) failStore(w http.ResponseWriter, r *http.Request, backURL string, err error) {
	if msg, ok := userMessage(err); ok {
		redirectFlash(w, r, backURL, "error", msg)
		return
	}
	s.log.Error("store operation failed", "path", r.URL.Path, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
