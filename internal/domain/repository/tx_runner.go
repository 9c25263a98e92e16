package repository

import "context"

// TxRunner ejecuta fn como una unidad: ninguna otra unidad observa estados intermedios.
type TxRunner interface {
	Run(ctx context.Context, fn func(ctx context.Context) error) error
}
