package menu

import (
	"cafe-menu-backend/domain"
)

// categorySpec describes what a category supports. The registry is the one
// place that decides whether a category exists, so every handler path
// rejects unknown categories identically.
type categorySpec struct {
	groups    []string
	dualPrice bool
}

var categories = map[string]categorySpec{
	domain.CategoryCoffee: {groups: domain.CoffeeGroups, dualPrice: true},
	domain.CategoryToast:  {},
	domain.CategorySweet:  {},
}

func lookupCategory(category string) (categorySpec, bool) {
	spec, ok := categories[category]
	return spec, ok
}

func (s categorySpec) hasGroups() bool {
	return len(s.groups) > 0
}

func (s categorySpec) validGroup(group string) bool {
	for _, g := range s.groups {
		if g == group {
			return true
		}
	}
	return false
}
