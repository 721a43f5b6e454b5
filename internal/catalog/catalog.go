// Package catalog indexes dining-hall menus by hall and meal period.
//
// A Catalog is filled once by a loader and is read-only afterwards, so it can
// be shared by concurrent readers without locking.
package catalog

import (
	"iter"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

type meal struct {
	name  string
	items []domain.MenuItem
}

type hall struct {
	name   string
	meals  []*meal
	byName map[string]*meal
}

type Catalog struct {
	halls  []*hall
	byName map[string]*hall
	count  int
}

func New() *Catalog {
	return &Catalog{
		byName: make(map[string]*hall),
	}
}

// AddItem appends item to the (hallName, mealName) list, creating either key
// on first use. Keys are matched exactly and never removed.
func (c *Catalog) AddItem(hallName, mealName string, item domain.MenuItem) {
	h, ok := c.byName[hallName]
	if !ok {
		h = &hall{name: hallName, byName: make(map[string]*meal)}
		c.byName[hallName] = h
		c.halls = append(c.halls, h)
	}

	m, ok := h.byName[mealName]
	if !ok {
		m = &meal{name: mealName}
		h.byName[mealName] = m
		h.meals = append(h.meals, m)
	}

	m.items = append(m.items, item)
	c.count++
}

// DiningHalls returns hall names in the order they were first added.
func (c *Catalog) DiningHalls() []string {
	names := make([]string, 0, len(c.halls))
	for _, h := range c.halls {
		names = append(names, h.name)
	}
	return names
}

// Meals returns the meal periods of hallName, or an empty slice.
func (c *Catalog) Meals(hallName string) []string {
	h, ok := c.byName[hallName]
	if !ok {
		return []string{}
	}

	names := make([]string, 0, len(h.meals))
	for _, m := range h.meals {
		names = append(names, m.name)
	}
	return names
}

// Items returns a copy of the items served for (hallName, mealName) in
// insertion order, or an empty slice.
func (c *Catalog) Items(hallName, mealName string) []domain.MenuItem {
	h, ok := c.byName[hallName]
	if !ok {
		return []domain.MenuItem{}
	}
	m, ok := h.byName[mealName]
	if !ok {
		return []domain.MenuItem{}
	}

	items := make([]domain.MenuItem, len(m.items))
	copy(items, m.items)
	return items
}

// AllItems yields every entry: halls, then meals, then items, each in
// insertion order. Each call starts a fresh pass.
func (c *Catalog) AllItems() iter.Seq[domain.MenuEntry] {
	return func(yield func(domain.MenuEntry) bool) {
		for _, h := range c.halls {
			for _, m := range h.meals {
				for _, item := range m.items {
					if !yield(domain.MenuEntry{Hall: h.name, Meal: m.name, Item: item}) {
						return
					}
				}
			}
		}
	}
}

func (c *Catalog) Len() int {
	return c.count
}
