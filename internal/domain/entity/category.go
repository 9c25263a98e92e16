package entity

import "strings"

// NormalizeCategory limpia el nombre de una categoría. La comparación posterior es exacta
// (sensible a mayúsculas).
func NormalizeCategory(name string) string {
	return strings.TrimSpace(name)
}

// CategoriesOf deriva las categorías presentes en products, sin duplicados y en orden de aparición.
func CategoriesOf(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok || p.Category == "" {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}
