package postgres

import (
	"context"
	"fmt"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS documents (
    seq         BIGSERIAL,
    collection  TEXT        NOT NULL,
    id          TEXT        NOT NULL,
    data        JSONB       NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_seq_idx ON documents (collection, seq);

CREATE TABLE IF NOT EXISTS sales (
    id              TEXT PRIMARY KEY,
    customer_name   TEXT          NOT NULL,
    customer_email  TEXT          NOT NULL,
    date            TIMESTAMPTZ   NOT NULL,
    total           NUMERIC(12,2) NOT NULL,
    status          TEXT          NOT NULL
);

CREATE TABLE IF NOT EXISTS sale_items (
    sale_id       TEXT          NOT NULL REFERENCES sales (id) ON DELETE CASCADE,
    line          INT           NOT NULL,
    product_id    TEXT          NOT NULL,
    product_name  TEXT          NOT NULL,
    quantity      INT           NOT NULL,
    price         NUMERIC(12,2) NOT NULL,
    PRIMARY KEY (sale_id, line)
);`

// EnsureSchema crea las tablas de documentos y pedidos si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
