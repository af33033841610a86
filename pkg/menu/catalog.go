package menu

import (
	"fmt"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"strings"
)

const (
	CategoryStarters = "starters"
	CategoryMains    = "mains"
	CategoryDesserts = "desserts"
	CategoryDrinks   = "drinks"

	DefaultIcon = "fas fa-utensils"
)

// Categories is the fixed display order of the public menu.
var Categories = []string{CategoryStarters, CategoryMains, CategoryDesserts, CategoryDrinks}

var categoryTitles = map[string]string{
	CategoryStarters: "Starters/Appetizers",
	CategoryMains:    "Main Courses",
	CategoryDesserts: "Desserts",
	CategoryDrinks:   "Drinks & Cocktails",
}

var categorySynonyms = map[string][]string{
	CategoryStarters: {"starters", "appetizers", "starters/appetizers"},
	CategoryMains:    {"mains", "main courses", "main course", "entrees"},
	CategoryDesserts: {"desserts", "dessert"},
	CategoryDrinks:   {"drinks", "beverages", "cocktails", "drinks & cocktails"},
}

var synonymIndex = func() map[string]string {
	idx := map[string]string{}
	for category, names := range categorySynonyms {
		for _, name := range names {
			idx[name] = category
		}
	}
	return idx
}()

// NormalizeCategory maps a stored category value onto one of the four display
// categories. Unrecognised values land in mains.
func NormalizeCategory(raw string) string {
	if c, ok := synonymIndex[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return c
	}
	return CategoryMains
}

func CategoryTitle(category string) string {
	return categoryTitles[NormalizeCategory(category)]
}

// Group partitions items into the four categories, preserving input order
// within each category.
func Group(items []*entities.MenuItem) map[string][]*entities.MenuItem {
	grouped := make(map[string][]*entities.MenuItem, len(Categories))
	for _, c := range Categories {
		grouped[c] = []*entities.MenuItem{}
	}
	for _, item := range items {
		c := NormalizeCategory(item.Category)
		grouped[c] = append(grouped[c], item)
	}
	return grouped
}

func SplitTags(tags string) []string {
	out := []string{}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func NewMenuCard(item *entities.MenuItem) domain.MenuCard {
	card := domain.MenuCard{
		ID:           item.ID.String(),
		Name:         item.Name,
		Price:        FormatPrice(item.Price),
		Description:  item.Description,
		Tags:         SplitTags(item.Tags),
		HasAllergies: item.HasAllergies,
	}
	if item.ImageURL != "" {
		card.ImageURL = item.ImageURL
	} else if item.Icon != "" {
		card.Icon = item.Icon
	} else {
		card.Icon = DefaultIcon
	}
	return card
}

// BuildCatalog renders the read-only public menu. Every category is present;
// empty ones carry the static empty-state message.
func BuildCatalog(items []*entities.MenuItem) domain.MenuCatalogResponse {
	grouped := Group(items)
	sections := make([]domain.MenuSection, 0, len(Categories))
	for _, c := range Categories {
		section := domain.MenuSection{
			Category: c,
			Title:    categoryTitles[c],
			Items:    make([]domain.MenuCard, 0, len(grouped[c])),
		}
		for _, item := range grouped[c] {
			section.Items = append(section.Items, NewMenuCard(item))
		}
		if len(section.Items) == 0 {
			section.EmptyMessage = domain.MessageNoMenuItems
		}
		sections = append(sections, section)
	}
	return domain.MenuCatalogResponse{Sections: sections, Total: len(items)}
}
