package entities

// MenuItem is a single dish on the café menu. The three categories
// (coffee, toast, sweet) share one table; Category is set on creation and
// never updated afterwards. Group, Price2, Temperature and MilkAlternatives
// are only meaningful for coffee.
type MenuItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Category string `gorm:"type:varchar(20);index;not null" json:"category"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`

	Group       string   `gorm:"type:varchar(20);index" json:"group,omitempty"`
	Price       float64  `gorm:"type:decimal(6,2);default:0" json:"price"`
	Price2      *float64 `gorm:"type:decimal(6,2)" json:"price_2,omitempty"`
	Temperature string   `gorm:"type:varchar(10)" json:"temperature,omitempty"`

	Description       string `gorm:"type:text" json:"description,omitempty"`
	Ingredients       string `gorm:"type:text" json:"ingredients,omitempty"`
	Allergens         string `gorm:"type:varchar(100)" json:"allergens,omitempty"`
	MilkAlternatives  string `gorm:"type:varchar(200)" json:"milk_alternatives,omitempty"`
	PreparationMethod string `gorm:"type:varchar(100)" json:"preparation_method,omitempty"`
	ImageURL          string `json:"image_url,omitempty"`

	// SortOrder positions the item within its (category, group) partition.
	// Rewritten only by the reorder endpoint, never by edit forms.
	SortOrder int  `gorm:"default:0;index" json:"sort_order"`
	IsActive  bool `gorm:"default:true" json:"is_active"`

	Timestamp
}
