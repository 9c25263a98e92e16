// Package seed contiene el conjunto de datos base que acompaña al binario. Cada función
// devuelve una copia nueva: nadie puede alterar la línea base en memoria.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/attire-api/internal/domain/entity"
)

// Users devuelve la plantilla base. user-001 es el propietario.
func Users() []entity.User {
	return []entity.User{
		{ID: "user-001", Name: "Admin User", Email: "deepakadimoolam1412@gmail.com", Password: "Deepak1412", Role: entity.RoleAdmin, Owner: true},
		{ID: "user-002", Name: "Priya Patel", Email: "priya.patel@example.com", Password: "password123", Role: entity.RoleSales},
		{ID: "user-003", Name: "Rohan Sharma", Email: "rohan.sharma@example.com", Password: "password123", Role: entity.RoleSales},
		{ID: "user-004", Name: "Ananya Iyer", Email: "ananya.iyer@example.com", Password: "password123", Role: entity.RoleSales},
		{ID: "user-005", Name: "Tejaswini Satish", Email: "tejuvenky277@gmail.com", Password: "Teju9740", Role: entity.RoleAdmin},
	}
}

// Products devuelve el catálogo base.
func Products() []entity.Product {
	return []entity.Product{
		{ID: "1", Name: "Crimson Silk Saree", Category: "Saree", Gender: entity.GenderWomen, Size: "Free Size", Color: "Crimson", Fabric: "Silk", Occasion: entity.OccasionWedding, Stock: 12, ImageURL: entity.DefaultImageURL},
		{ID: "2", Name: "Royal Blue Lehenga", Category: "Lehenga", Gender: entity.GenderWomen, Size: "M", Color: "Royal Blue", Fabric: "Velvet", Occasion: entity.OccasionWedding, Stock: 5, ImageURL: entity.DefaultImageURL},
		{ID: "3", Name: "Classic White Kurta", Category: "Kurta", Gender: entity.GenderMen, Size: "L", Color: "White", Fabric: "Cotton", Occasion: entity.OccasionFormal, Stock: 25, ImageURL: entity.DefaultImageURL},
		{ID: "4", Name: "Golden Border Dhoti", Category: "Dhoti", Gender: entity.GenderMen, Size: "Free Size", Color: "Cream", Fabric: "Cotton", Occasion: entity.OccasionFestival, Stock: 18, ImageURL: entity.DefaultImageURL},
		{ID: "5", Name: "Green Georgette Saree", Category: "Saree", Gender: entity.GenderWomen, Size: "Free Size", Color: "Green", Fabric: "Georgette", Occasion: entity.OccasionFestival, Stock: 3, ImageURL: entity.DefaultImageURL},
		{ID: "6", Name: "Embroidered Kurta", Category: "Kurta", Gender: entity.GenderMen, Size: "M", Color: "Maroon", Fabric: "Silk Blend", Occasion: entity.OccasionFestival, Stock: 9, ImageURL: entity.DefaultImageURL},
		{ID: "7", Name: "Pastel Pink Lehenga", Category: "Lehenga", Gender: entity.GenderWomen, Size: "S", Color: "Pastel Pink", Fabric: "Net", Occasion: entity.OccasionWedding, Stock: 2, ImageURL: entity.DefaultImageURL},
		{ID: "8", Name: "Casual Cotton Kurta", Category: "Kurta", Gender: entity.GenderUnisex, Size: "XL", Color: "Indigo", Fabric: "Cotton", Occasion: entity.OccasionCasual, Stock: 30, ImageURL: entity.DefaultImageURL},
	}
}

// Categories deriva las categorías de los productos base.
func Categories() []string {
	return entity.CategoriesOf(Products())
}

// Sales devuelve los pedidos de venta base.
func Sales() []entity.Sale {
	return []entity.Sale{
		{
			ID: "ORD-001", CustomerName: "Priya Patel", CustomerEmail: "priya.patel@example.com",
			Date: at("2024-05-20T10:30:00Z"), Total: money("250.00"), Status: entity.SaleFulfilled,
			Items: []entity.SaleItem{
				{ProductID: "1", ProductName: "Crimson Silk Saree", Quantity: 1, Price: money("150.00")},
				{ProductID: "8", ProductName: "Casual Cotton Kurta", Quantity: 2, Price: money("50.00")},
			},
		},
		{
			ID: "ORD-002", CustomerName: "Rohan Sharma", CustomerEmail: "rohan.sharma@example.com",
			Date: at("2024-05-22T14:00:00Z"), Total: money("190.00"), Status: entity.SaleFulfilled,
			Items: []entity.SaleItem{
				{ProductID: "3", ProductName: "Classic White Kurta", Quantity: 1, Price: money("70.00")},
				{ProductID: "4", ProductName: "Golden Border Dhoti", Quantity: 1, Price: money("120.00")},
			},
		},
		{
			ID: "ORD-003", CustomerName: "Ananya Iyer", CustomerEmail: "ananya.iyer@example.com",
			Date: at("2024-05-23T11:45:00Z"), Total: money("350.00"), Status: entity.SalePending,
			Items: []entity.SaleItem{
				{ProductID: "2", ProductName: "Royal Blue Lehenga", Quantity: 1, Price: money("350.00")},
			},
		},
		{
			ID: "ORD-004", CustomerName: "Vikram Singh", CustomerEmail: "vikram.singh@example.com",
			Date: at("2024-05-24T09:00:00Z"), Total: money("100.00"), Status: entity.SaleFulfilled,
			Items: []entity.SaleItem{
				{ProductID: "6", ProductName: "Embroidered Kurta", Quantity: 1, Price: money("100.00")},
			},
		},
		{
			ID: "ORD-005", CustomerName: "Meera Desai", CustomerEmail: "meera.desai@example.com",
			Date: at("2024-05-25T16:20:00Z"), Total: money("95.00"), Status: entity.SaleCancelled,
			Items: []entity.SaleItem{
				{ProductID: "5", ProductName: "Green Georgette Saree", Quantity: 1, Price: money("95.00")},
			},
		},
		{
			ID: "ORD-006", CustomerName: "Arjun Mehta", CustomerEmail: "arjun.mehta@example.com",
			Date: at("2024-05-26T18:00:00Z"), Total: money("420.00"), Status: entity.SalePending,
			Items: []entity.SaleItem{
				{ProductID: "7", ProductName: "Pastel Pink Lehenga", Quantity: 1, Price: money("420.00")},
			},
		},
	}
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("seed: fecha inválida " + s)
	}
	return t
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
