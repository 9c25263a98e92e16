package dto

// ProductRequest entrada para crear o reemplazar un producto. ImageURL vacío conserva
// la imagen actual (o la imagen por defecto al crear).
type ProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=Men Women Unisex"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Fabric   string `json:"fabric"`
	Occasion string `json:"occasion" validate:"required,oneof=Wedding Festival Casual Formal"`
	Stock    int    `json:"stock" validate:"min=0"`
	ImageURL string `json:"image_url"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Gender   string `json:"gender"`
	Size     string `json:"size"`
	Color    string `json:"color"`
	Fabric   string `json:"fabric"`
	Occasion string `json:"occasion"`
	Stock    int    `json:"stock"`
	ImageURL string `json:"image_url"`
}

// ProductFilter criterios del catálogo. Vacío o "All" no restringe.
type ProductFilter struct {
	Gender   string `query:"gender"`
	Category string `query:"category"`
	Occasion string `query:"occasion"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// CategoryRequest entrada para crear una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryListResponse listado de categorías.
type CategoryListResponse struct {
	Items []string `json:"items"`
}
