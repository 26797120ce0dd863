package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoCatalog_Categories(t *testing.T) {
	c := NewDemo()

	cats := c.Categories()
	require.Len(t, cats, 8)
	assert.Equal(t, "bebidas", cats[0].ID)
	assert.Equal(t, "Bebidas", cats[0].Name)
	assert.Equal(t, "otros", cats[7].ID)
}

func TestDemoCatalog_Products(t *testing.T) {
	c := NewDemo()

	products, err := c.Products("bebidas")
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Coca Cola 600ml", products[0].Name)
	assert.Equal(t, 25.00, products[0].Price)
}

func TestDemoCatalog_Products_EmptyCategory(t *testing.T) {
	c := NewDemo()

	// the category exists but carries no demo products
	products, err := c.Products("carnes")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDemoCatalog_Products_UnknownCategory(t *testing.T) {
	c := NewDemo()

	_, err := c.Products("ferreteria")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDemoCatalog_Get(t *testing.T) {
	c := NewDemo()

	p, err := c.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Pan Blanco", p.Name)
	assert.Equal(t, 28.00, p.Price)

	_, err = c.Get("999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDemoCatalog_Search(t *testing.T) {
	c := NewDemo()

	results := c.Search("pan")
	require.NotEmpty(t, results)
	assert.Equal(t, "Pan Blanco", results[0].Name)

	// case insensitive
	assert.Equal(t, results, c.Search("PAN"))
}

func TestDemoCatalog_Search_NoMatch(t *testing.T) {
	c := NewDemo()

	assert.Empty(t, c.Search("cerveza"))
	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("   "))
}
