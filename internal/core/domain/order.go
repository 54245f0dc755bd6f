package domain

import "time"

// Order is a single pickup line: one scrap item type and its quantity.
// A multi-item request fans out into one Order per item, all sharing
// the same pickup date and address.
type Order struct {
	ID            string    `json:"order_id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	ItemType      string    `json:"item_type"`
	Quantity      float64   `json:"quantity"`
	PickupDate    time.Time `json:"pickup_date"`
	OrderDate     time.Time `json:"order_date"`
	PickupAddress string    `json:"pickup_address"`
}

// ScrapCategory groups acceptable scrap items for the static catalog.
type ScrapCategory struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// ScrapCatalog is the reference list of accepted scrap items served by
// the catalog endpoint. Static data, no logic.
var ScrapCatalog = []ScrapCategory{
	{
		Category: "Metals",
		Items: []string{
			"Aluminum cans",
			"Copper wires",
			"Steel utensils",
			"Iron rods or tools",
			"Brass fittings",
			"Old pressure cookers",
			"Non-stick pans",
			"Bicycle parts",
			"Rusty nails, screws, bolts",
		},
	},
	{
		Category: "Plastics",
		Items: []string{
			"Empty detergent containers",
			"Shampoo and soap bottles",
			"Plastic jars and containers",
			"Old plastic buckets or mugs",
			"Broken plastic furniture",
			"PET bottles",
		},
	},
	{
		Category: "Paper Products",
		Items: []string{
			"Newspapers",
			"Magazines",
			"Used notebooks",
			"Cardboard boxes",
			"Old books",
			"Paper packaging",
		},
	},
	{
		Category: "Glass Items",
		Items: []string{
			"Broken glass bottles",
			"Empty sauce or pickle jars",
			"Old mirrors",
			"Window panes",
		},
	},
	{
		Category: "Electronics and E-Waste",
		Items: []string{
			"Old mobile phones",
			"Broken chargers and cables",
			"Dead batteries",
			"Defunct TVs and radios",
			"Old computer parts",
			"Electric irons",
			"Tube lights and CFLs",
		},
	},
	{
		Category: "Miscellaneous",
		Items: []string{
			"Broken ceramic plates or tiles",
			"Discarded footwear",
			"Old toys",
			"Used Tupperware",
			"Broken umbrellas",
		},
	},
}
