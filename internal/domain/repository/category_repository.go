package repository

import "context"

// CategoryRepository define el puerto de persistencia para las categorías (valores de texto).
type CategoryRepository interface {
	List(ctx context.Context) ([]string, error)
	// Add agrega name al final. ErrCategoryExists si ya está presente.
	Add(ctx context.Context, name string) error
}
