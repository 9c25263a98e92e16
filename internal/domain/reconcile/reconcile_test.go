package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attire-api/internal/domain/reconcile"
)

type rec struct {
	ID   string
	Role string
}

func byID(r rec) string { return r.ID }

func TestReconcile_StoredWinsOnSharedID(t *testing.T) {
	seed := []rec{{"user-001", "admin"}, {"user-002", "sales"}}
	stored := []rec{{"user-001", "sales"}}

	out := reconcile.Reconcile(seed, stored, byID)

	require.Len(t, out, 2)
	assert.Equal(t, rec{"user-001", "sales"}, out[0], "lo guardado debe ganar sobre la semilla")
	assert.Equal(t, rec{"user-002", "sales"}, out[1])
}

func TestReconcile_KeepsSeedOrderAndAppendsNewRecords(t *testing.T) {
	seed := []rec{{"a", "1"}, {"b", "1"}, {"c", "1"}}
	stored := []rec{{"x", "2"}, {"b", "2"}, {"y", "2"}}

	out := reconcile.Reconcile(seed, stored, byID)

	ids := make([]string, 0, len(out))
	for _, r := range out {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "x", "y"}, ids)
	assert.Equal(t, "2", out[1].Role)
}

func TestReconcile_OneRecordPerDistinctID(t *testing.T) {
	seed := []rec{{"a", "s"}, {"b", "s"}}
	stored := []rec{{"c", "1"}, {"c", "2"}, {"a", "1"}, {"a", "3"}}

	out := reconcile.Reconcile(seed, stored, byID)

	seen := map[string]int{}
	for _, r := range out {
		seen[r.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %s duplicado", id)
	}
	assert.Len(t, out, 3)
	assert.Equal(t, "3", out[0].Role, "la última escritura guardada gana")
	assert.Equal(t, "2", out[2].Role)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	assert.Empty(t, reconcile.Reconcile[rec](nil, nil, byID))

	seed := []rec{{"a", "s"}}
	assert.Equal(t, seed, reconcile.Reconcile(seed, nil, byID))
	assert.Equal(t, seed, reconcile.Reconcile(nil, seed, byID))
}

func TestStrings_CollapsesDuplicates(t *testing.T) {
	out := reconcile.Strings([]string{"Saree", "Kurta"}, []string{"Kurta", "Sherwani", "Sherwani"})
	assert.Equal(t, []string{"Saree", "Kurta", "Sherwani"}, out)
}

func TestUpsert_ReplacesOrAppends(t *testing.T) {
	list := []rec{{"a", "1"}, {"b", "1"}}

	replaced := reconcile.Upsert(list, rec{"b", "2"}, byID)
	assert.Equal(t, []rec{{"a", "1"}, {"b", "2"}}, replaced)
	assert.Equal(t, "1", list[1].Role, "la lista original no se modifica")

	appended := reconcile.Upsert(list, rec{"c", "1"}, byID)
	assert.Len(t, appended, 3)
}

func TestWithout_DropsTombstoned(t *testing.T) {
	list := []rec{{"a", "1"}, {"b", "1"}, {"c", "1"}}
	out := reconcile.Without(list, map[string]struct{}{"b": {}}, byID)
	assert.Equal(t, []rec{{"a", "1"}, {"c", "1"}}, out)
}
