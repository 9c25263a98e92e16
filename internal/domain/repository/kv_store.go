package repository

import "context"

// KeyValueStore es el puerto del almacén persistente clave-valor (equivalente al
// almacenamiento por navegador del prototipo). Las claves son cadenas fijas y los
// valores blobs JSON opacos para el adaptador.
type KeyValueStore interface {
	// Get devuelve el valor y true si la clave existe.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove es idempotente.
	Remove(ctx context.Context, key string) error
}
