package menu

import (
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(name, category string) *entities.MenuItem {
	return &entities.MenuItem{ID: uuid.New(), Name: name, Category: category, Price: 9.5}
}

func TestNormalizeCategory(t *testing.T) {
	tests := map[string]string{
		"starters":            CategoryStarters,
		"  Appetizers ":       CategoryStarters,
		"Starters/Appetizers": CategoryStarters,
		"Main Course":         CategoryMains,
		"entrees":             CategoryMains,
		"DESSERT":             CategoryDesserts,
		"Beverages":           CategoryDrinks,
		"cocktails":           CategoryDrinks,
		"Drinks & Cocktails":  CategoryDrinks,
		"soup":                CategoryMains,
		"":                    CategoryMains,
	}
	for raw, want := range tests {
		assert.Equal(t, want, NormalizeCategory(raw), raw)
	}
}

func TestGroupKeepsFixedOrderAndDefaults(t *testing.T) {
	items := []*entities.MenuItem{
		item("Lemonade", "Beverages"),
		item("Mystery", "chef special"),
		item("Steak", "mains"),
		item("Bruschetta", "appetizers"),
	}

	grouped := Group(items)
	require.Len(t, grouped, 4)
	assert.Equal(t, []*entities.MenuItem{items[3]}, grouped[CategoryStarters])
	assert.Equal(t, []*entities.MenuItem{items[1], items[2]}, grouped[CategoryMains])
	assert.Empty(t, grouped[CategoryDesserts])
	assert.Equal(t, []*entities.MenuItem{items[0]}, grouped[CategoryDrinks])
}

func TestBuildCatalog(t *testing.T) {
	wine := item("Wine", "drinks")
	wine.Tags = " red, , dry "
	wine.ImageURL = "https://cdn.example.com/wine.png"
	cake := item("Cake", "desserts")
	cake.Icon = "fas fa-birthday-cake"
	soup := item("Soup", "")
	soup.Price = 7

	catalog := BuildCatalog([]*entities.MenuItem{wine, cake, soup})
	require.Len(t, catalog.Sections, 4)
	assert.Equal(t, 3, catalog.Total)

	titles := []string{}
	for _, s := range catalog.Sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"Starters/Appetizers", "Main Courses", "Desserts", "Drinks & Cocktails"}, titles)

	starters := catalog.Sections[0]
	assert.Empty(t, starters.Items)
	assert.Equal(t, domain.MessageNoMenuItems, starters.EmptyMessage)

	mains := catalog.Sections[1]
	require.Len(t, mains.Items, 1)
	assert.Equal(t, "$7.00", mains.Items[0].Price)
	assert.Equal(t, DefaultIcon, mains.Items[0].Icon)
	assert.Empty(t, mains.EmptyMessage)

	assert.Equal(t, "fas fa-birthday-cake", catalog.Sections[2].Items[0].Icon)

	drink := catalog.Sections[3].Items[0]
	assert.Equal(t, []string{"red", "dry"}, drink.Tags)
	assert.Equal(t, wine.ImageURL, drink.ImageURL)
	assert.Empty(t, drink.Icon)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(12.5))
	assert.Equal(t, "$0.99", FormatPrice(0.99))
	assert.Equal(t, "$100.00", FormatPrice(100))
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Drinks & Cocktails", CategoryTitle("beverages"))
	assert.Equal(t, "Main Courses", CategoryTitle("unknown"))
}
