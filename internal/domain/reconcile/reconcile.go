// Package reconcile fusiona el conjunto semilla con los registros guardados por el usuario.
//
// Regla única para identidades, productos y categorías: mapa ordenado por clave,
// primero la semilla (orden base) y luego lo guardado, que sobrescribe en sitio la
// entrada semilla con la misma clave o se agrega al final si la clave es nueva.
package reconcile

// Reconcile devuelve una colección con exactamente un registro por clave distinta.
// Si stored repite una clave, gana la última aparición.
func Reconcile[T any](seed, stored []T, key func(T) string) []T {
	index := make(map[string]int, len(seed)+len(stored))
	out := make([]T, 0, len(seed)+len(stored))
	put := func(rec T) {
		k := key(rec)
		if i, ok := index[k]; ok {
			out[i] = rec
			return
		}
		index[k] = len(out)
		out = append(out, rec)
	}
	for _, rec := range seed {
		put(rec)
	}
	for _, rec := range stored {
		put(rec)
	}
	return out
}

// Strings reconcilia listas de valores donde el valor es su propia clave.
func Strings(seed, stored []string) []string {
	return Reconcile(seed, stored, func(s string) string { return s })
}

// Upsert reemplaza el registro con la misma clave o lo agrega al final.
func Upsert[T any](list []T, rec T, key func(T) string) []T {
	k := key(rec)
	out := make([]T, len(list), len(list)+1)
	copy(out, list)
	for i := range out {
		if key(out[i]) == k {
			out[i] = rec
			return out
		}
	}
	return append(out, rec)
}

// Without devuelve list sin los registros cuya clave está en drop.
func Without[T any](list []T, drop map[string]struct{}, key func(T) string) []T {
	if len(drop) == 0 {
		return list
	}
	out := make([]T, 0, len(list))
	for _, rec := range list {
		if _, gone := drop[key(rec)]; gone {
			continue
		}
		out = append(out, rec)
	}
	return out
}
