package cmd

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/product"
	"dispatch/internal/core/domain/model/staff"
)

// SampleCatalog builds the restaurant's product listing. The catalog is
// static reference data; changing it requires a redeploy.
func SampleCatalog() ([]*product.Product, error) {
	entries := []struct {
		code        string
		description string
		price       float64
		category    product.Category
	}{
		{"P001", "Margherita Pizza", 8.99, product.VegPizza},
		{"P002", "Pepperoni Pizza", 10.99, product.NonVegPizza},
		{"S001", "Veg Sandwich", 5.99, product.Sandwich},
		{"B001", "Cheeseburger", 7.99, product.Burger},
		{"D001", "Soft Drink", 1.99, product.Drinks},
	}

	catalog := make([]*product.Product, 0, len(entries))
	for _, entry := range entries {
		price, err := kernel.NewPrice(entry.price)
		if err != nil {
			return nil, err
		}
		p, err := product.NewProduct(entry.code, entry.description, price, entry.category)
		if err != nil {
			return nil, err
		}
		catalog = append(catalog, p)
	}

	return catalog, nil
}

// SampleRoster builds the initial staff registry. Everyone starts logged out;
// availability comes only from explicit logins.
func SampleRoster() ([]*staff.Staff, error) {
	entries := []struct {
		id     string
		name   string
		skills []product.Category
	}{
		{"S001", "Chandler", []product.Category{product.VegPizza, product.Burger}},
		{"S002", "Joey", []product.Category{product.VegPizza, product.NonVegPizza, product.Sandwich, product.Burger}},
		{"S003", "Rachel", []product.Category{product.NonVegPizza}},
		{"S004", "Monica", []product.Category{product.Sandwich}},
		{"S005", "Ross", []product.Category{product.Drinks}},
	}

	roster := make([]*staff.Staff, 0, len(entries))
	for _, entry := range entries {
		member, err := staff.NewStaff(entry.id, entry.name, entry.skills)
		if err != nil {
			return nil, err
		}
		roster = append(roster, member)
	}

	return roster, nil
}
