package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("identificador inválido")
	}
	return id, nil
}

func parseDecimal(raw, field string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser numérico", field)
	}
	return value, nil
}

func parseInteger(raw, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número inteiro", field)
	}
	return value, nil
}

// parseOptionalInteger returns nil for an empty field. Whether the value is
// actually required depends on the material's measure type and is decided by
// the store.
func parseOptionalInteger(raw, field string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s deve ser um número inteiro", field)
	}
	return &value, nil
}
