package seed_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/attire-api/internal/application/seed"
	"github.com/jhoicas/attire-api/internal/domain/entity"
)

func TestUsers_UniqueIDsAndEmails(t *testing.T) {
	ids := map[string]bool{}
	emails := map[string]bool{}
	owners := 0
	for _, u := range seed.Users() {
		assert.False(t, ids[u.ID], "id duplicado %s", u.ID)
		assert.False(t, emails[u.Email], "email duplicado %s", u.Email)
		assert.True(t, entity.ValidRole(u.Role))
		ids[u.ID] = true
		emails[u.Email] = true
		if u.Owner {
			owners++
			assert.Equal(t, entity.RoleAdmin, u.Role, "el propietario debe ser admin")
		}
	}
	assert.Equal(t, 1, owners)
}

func TestProducts_ValidEnumsAndUniqueIDs(t *testing.T) {
	ids := map[string]bool{}
	for _, p := range seed.Products() {
		assert.False(t, ids[p.ID])
		ids[p.ID] = true
		assert.True(t, entity.ValidGender(p.Gender), p.Name)
		assert.True(t, entity.ValidOccasion(p.Occasion), p.Name)
		assert.GreaterOrEqual(t, p.Stock, 0)
	}
}

func TestCategories_DerivedFromProducts(t *testing.T) {
	assert.Equal(t, []string{"Saree", "Lehenga", "Kurta", "Dhoti"}, seed.Categories())
}

func TestSales_TotalsMatchItems(t *testing.T) {
	for _, s := range seed.Sales() {
		sum := decimal.Zero
		for _, it := range s.Items {
			sum = sum.Add(it.Subtotal())
		}
		assert.True(t, sum.Equal(s.Total), "pedido %s: total %s != %s", s.ID, s.Total, sum)
	}
}

func TestSeedReturnsFreshCopies(t *testing.T) {
	users := seed.Users()
	users[0].Role = entity.RoleSales
	assert.Equal(t, entity.RoleAdmin, seed.Users()[0].Role)
}
