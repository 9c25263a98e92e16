package entity

// Géneros de producto.
const (
	GenderMen    = "Men"
	GenderWomen  = "Women"
	GenderUnisex = "Unisex"
)

// Ocasiones de uso.
const (
	OccasionWedding  = "Wedding"
	OccasionFestival = "Festival"
	OccasionCasual   = "Casual"
	OccasionFormal   = "Formal"
)

// DefaultImageURL se asigna a los productos creados sin imagen.
const DefaultImageURL = "https://placehold.co/600x400.png"

// Product representa una prenda del inventario.
type Product struct {
	ID       string
	Name     string
	Category string // referencia débil a una categoría por nombre
	Gender   string
	Size     string
	Color    string
	Fabric   string
	Occasion string
	Stock    int
	ImageURL string
}

// ValidGender indica si g es un género soportado.
func ValidGender(g string) bool {
	switch g {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// ValidOccasion indica si o es una ocasión soportada.
func ValidOccasion(o string) bool {
	switch o {
	case OccasionWedding, OccasionFestival, OccasionCasual, OccasionFormal:
		return true
	}
	return false
}
