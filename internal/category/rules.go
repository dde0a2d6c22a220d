package category

import (
	"strings"
	"sync"
)

// Fallback is the catch-all label assigned when no keyword matches.
const Fallback = "Otros"

// RuleSet maps category labels to lowercase keyword substrings. Categories
// keep their definition order: classification is first-match-wins over that
// order, so the order is part of the observable contract. Safe for concurrent
// use; registration may run while classifications are in flight.
type RuleSet struct {
	mu       sync.RWMutex
	order    []string
	keywords map[string][]string
}

// defaultRules lists the built-in categories in match priority order.
var defaultRules = []struct {
	label    string
	keywords []string
}{
	{"Comida", []string{
		"supermercado", "mercado", "restaurante", "comida", "cena", "almuerzo",
		"desayuno", "pizza", "hamburgues", "café", "bar", "cocina", "grocery",
		"food", "restaurant", "cafe", "kitchen", "eating",
	}},
	{"Transporte", []string{
		"gasolina", "combustible", "uber", "taxi", "metro", "autobús", "bus",
		"tren", "avión", "parking", "estacionamiento", "peaje", "transport",
		"gas", "fuel", "toll", "train", "plane",
	}},
	{"Entretenimiento", []string{
		"cine", "teatro", "concierto", "juego", "streaming", "netflix", "spotify",
		"entretenimiento", "diversión", "ocio", "movie", "concert", "game",
		"entertainment", "fun", "leisure",
	}},
	{"Salud", []string{
		"farmacia", "médico", "doctor", "hospital", "dentista", "medicina",
		"salud", "seguro", "pharmacy", "medical", "health", "dentist",
		"medicine", "insurance",
	}},
	{"Servicios", []string{
		"luz", "agua", "internet", "teléfono", "electricidad", "servicio",
		"utilidad", "electricity", "water", "utility", "service", "phone",
	}},
	{"Compras", []string{
		"tienda", "ropa", "zapatos", "amazon", "shopping", "compra", "store",
		"clothes", "shoes", "purchase", "buy",
	}},
}

// NewRuleSet creates a RuleSet seeded with the built-in categories.
func NewRuleSet() *RuleSet {
	rs := &RuleSet{keywords: make(map[string][]string)}
	for _, r := range defaultRules {
		rs.order = append(rs.order, r.label)
		rs.keywords[r.label] = append([]string(nil), r.keywords...)
	}
	return rs
}

// Classify maps a free-text description to a category label. Matching is
// substring-based so inflected forms are caught; a short keyword like "bar"
// will also match inside unrelated words, which is a known false-positive
// source, not a bug.
func (rs *RuleSet) Classify(description string) string {
	desc := strings.ToLower(strings.TrimSpace(description))

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	for _, label := range rs.order {
		for _, kw := range rs.keywords[label] {
			if strings.Contains(desc, kw) {
				return label
			}
		}
	}
	return Fallback
}

// RegisterKeyword adds a keyword to a category, lowercased. Re-adding an
// existing keyword is a no-op, as is a blank keyword: the empty string is a
// substring of everything and would make the category match any description.
// An unknown category is created and appended after the built-ins, so it
// matches last.
func (rs *RuleSet) RegisterKeyword(category, keyword string) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	existing, ok := rs.keywords[category]
	if !ok {
		rs.order = append(rs.order, category)
	}
	for _, k := range existing {
		if k == kw {
			return
		}
	}
	rs.keywords[category] = append(existing, kw)
}

// Categories returns the category labels in match priority order.
func (rs *RuleSet) Categories() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string(nil), rs.order...)
}

// Keywords returns the keywords registered for a category, nil if unknown.
func (rs *RuleSet) Keywords(category string) []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]string(nil), rs.keywords[category]...)
}
