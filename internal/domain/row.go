package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Row é a forma frouxa de um registro vindo de fora do domínio: corpo de
// requisição decodificado, linha de importação em massa ou documento JSON
// vindo do banco. O normalizador converte Row nos tipos estritos do domínio.
type Row map[string]any

// String retorna o campo como string, com "" para ausente ou nulo
func (r Row) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

// Float retorna o campo como float64, aceitando números de qualquer largura
// e strings numéricas. Ausente, nulo ou inválido resulta em 0.
func (r Row) Float(key string) float64 {
	v, ok := r[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int retorna o campo como int, truncando valores fracionários
func (r Row) Int(key string) int {
	return int(r.Float(key))
}

// Bool retorna o campo como bool, aceitando o literal e strings "true"/"1"
func (r Row) Bool(key string) bool {
	v, ok := r[key]
	if !ok || v == nil {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "1"
	default:
		return false
	}
}

// Date retorna o campo como data. Aceita RFC3339 e o formato 2006-01-02;
// ausente ou inválido resulta na data zero.
func (r Row) Date(key string) time.Time {
	s := r.String(key)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

// Object retorna o campo como sub-Row, com documento vazio para ausente
func (r Row) Object(key string) Row {
	v, ok := r[key]
	if !ok || v == nil {
		return Row{}
	}
	if m, ok := v.(map[string]any); ok {
		return Row(m)
	}
	return Row{}
}

// Enum retorna o campo normalizado em minúsculas se pertencer ao conjunto
// permitido; caso contrário retorna o valor padrão informado. Valor presente
// mas fora do enum é preservado quando keepUnknown for verdadeiro.
func (r Row) Enum(key, fallback string, keepUnknown bool, allowed ...string) string {
	s := strings.ToLower(r.String(key))
	if s == "" {
		return fallback
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	if keepUnknown {
		return s
	}
	return fallback
}
