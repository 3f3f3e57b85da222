package migration

import (
	"cafe-menu-backend/domain"
	"cafe-menu-backend/entities"
	"fmt"

	"gorm.io/gorm"
)

type seedItem struct {
	name        string
	price       float64
	price2      *float64
	temperature string
	group       string
}

func p(v float64) *float64 { return &v }

// The opening coffee card. Listed per group in display order; sort orders
// are assigned densely within each group on insert.
var coffeeSeed = []seedItem{
	{"espresso", 10, nil, "", domain.GroupBasic},
	{"doppio", 12, nil, "", domain.GroupBasic},
	{"filter", 14, p(16), "both", domain.GroupBasic},
	{"cappuccino", 14, nil, "both", domain.GroupBasic},
	{"flat white", 16, nil, "both", domain.GroupBasic},
	{"latte", 18, nil, "both", domain.GroupBasic},
	{"raf", 17, p(19), "both", domain.GroupBasic},

	{"drip", 18, nil, "", domain.GroupAlternative},
	{"kalita", 18, nil, "", domain.GroupAlternative},
	{"dotyk", 18, nil, "", domain.GroupAlternative},
	{"chemex", 28, nil, "", domain.GroupAlternative},
	{"aero press", 20, nil, "", domain.GroupAlternative},
	{"syphon", 27, nil, "", domain.GroupAlternative},

	{"cold brew", 17, nil, "", domain.GroupOther},
	{"espresso tonic", 18, nil, "", domain.GroupOther},
	{"espresso orange", 18, nil, "", domain.GroupOther},
	{"matcha orange", 18, nil, "", domain.GroupOther},
	{"matcha raf", 17, p(19), "both", domain.GroupOther},
	{"matcha tonic", 18, nil, "", domain.GroupOther},
	{"matcha latte", 18, nil, "both", domain.GroupOther},
	{"rooibos latte", 18, nil, "both", domain.GroupOther},
	{"karob", 16, nil, "both", domain.GroupOther},
	{"cacao", 16, nil, "both", domain.GroupOther},
	{"masala", 18, nil, "", domain.GroupOther},
	{"tea", 16, nil, "both", domain.GroupOther},

	{"Vanilla Syrup", 5, nil, "", domain.GroupAddon},
}

// SeedMenu loads the sample coffee menu on an empty database.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	positions := map[string]int{}
	for _, seed := range coffeeSeed {
		item := entities.MenuItem{
			Category:    domain.CategoryCoffee,
			Name:        seed.name,
			Group:       seed.group,
			Price:       seed.price,
			Price2:      seed.price2,
			Temperature: seed.temperature,
			SortOrder:   positions[seed.group],
			IsActive:    true,
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
		positions[seed.group]++
	}

	fmt.Printf("Seeded %d coffee items\n", len(coffeeSeed))
	return nil
}
