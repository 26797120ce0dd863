package catalog

import "github.com/abarrotes/pos/internal/domain"

// NewDemo builds the catalog of the demo store. Only the first three
// categories carry products; the rest exist so the category grid renders.
func NewDemo() *Catalog {
	categories := []domain.Category{
		{ID: "bebidas", Name: "Bebidas"},
		{ID: "panaderia", Name: "Panadería"},
		{ID: "dulces", Name: "Dulces"},
		{ID: "carnes", Name: "Carnes"},
		{ID: "verduras", Name: "Verduras"},
		{ID: "limpieza", Name: "Limpieza"},
		{ID: "mascotas", Name: "Mascotas"},
		{ID: "otros", Name: "Otros"},
	}

	products := map[string][]domain.Product{
		"bebidas": {
			{ID: "1", Name: "Coca Cola 600ml", Price: 25.00},
			{ID: "2", Name: "Agua Natural 1L", Price: 15.00},
			{ID: "3", Name: "Jugo de Naranja", Price: 30.00},
		},
		"panaderia": {
			{ID: "4", Name: "Pan Blanco", Price: 28.00},
			{ID: "5", Name: "Croissant", Price: 22.00},
			{ID: "6", Name: "Bolillo", Price: 3.00},
		},
		"dulces": {
			{ID: "7", Name: "Sabritas Original", Price: 18.00},
			{ID: "8", Name: "Chocolate Carlos V", Price: 12.00},
			{ID: "9", Name: "Paleta Payaso", Price: 8.00},
		},
	}

	return New(categories, products)
}
