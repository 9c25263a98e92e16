package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/attire-api/internal/domain"
	"github.com/jhoicas/attire-api/internal/domain/entity"
	"github.com/jhoicas/attire-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo pedidos de venta sobre PostgreSQL.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador de persistencia para pedidos.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// List devuelve los pedidos por fecha ascendente con sus líneas.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, customer_email, date, total, status
		FROM sales ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.CustomerEmail, &s.Date, &s.Total, &s.Status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}

	items, err := r.itemsBySale(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Items = items[list[i].ID]
	}
	return list, nil
}

// GetByID obtiene un pedido por id.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, customer_email, date, total, status
		FROM sales WHERE id = $1`, id).Scan(&s.ID, &s.CustomerName, &s.CustomerEmail, &s.Date, &s.Total, &s.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT product_id, product_name, quantity, price
		FROM sale_items WHERE sale_id = $1 ORDER BY line`, id)
	if err != nil {
		return nil, fmt.Errorf("get sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		s.Items = append(s.Items, it)
	}
	return &s, rows.Err()
}

// UpdateStatus cambia el estado del pedido.
func (r *SaleRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE sales SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Seed inserta los pedidos que no existan todavía (usado por cmd/seed).
func (r *SaleRepo) Seed(ctx context.Context, sales []entity.Sale) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := 0
	for _, s := range sales {
		cmd, err := tx.Exec(ctx, `
			INSERT INTO sales (id, customer_name, customer_email, date, total, status)
			VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (id) DO NOTHING`,
			s.ID, s.CustomerName, s.CustomerEmail, s.Date, s.Total, s.Status)
		if err != nil {
			return 0, fmt.Errorf("insert sale %s: %w", s.ID, err)
		}
		if cmd.RowsAffected() == 0 {
			continue
		}
		inserted++
		for line, it := range s.Items {
			if _, err := tx.Exec(ctx, `
				INSERT INTO sale_items (sale_id, line, product_id, product_name, quantity, price)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				s.ID, line+1, it.ProductID, it.ProductName, it.Quantity, it.Price); err != nil {
				return 0, fmt.Errorf("insert sale item %s/%d: %w", s.ID, line+1, err)
			}
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return inserted, nil
}

func (r *SaleRepo) itemsBySale(ctx context.Context) (map[string][]entity.SaleItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sale_id, product_id, product_name, quantity, price
		FROM sale_items ORDER BY sale_id, line`)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.SaleItem)
	for rows.Next() {
		var saleID string
		var it entity.SaleItem
		if err := rows.Scan(&saleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[saleID] = append(out[saleID], it)
	}
	return out, rows.Err()
}
