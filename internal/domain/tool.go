package domain

type Tool struct {
	Model             `bson:",inline"`
	Name              string  `json:"name,omitempty" bson:"name,omitempty"`
	Price             float64 `json:"price,omitempty" bson:"price,omitempty"`
	Description       string  `json:"description,omitempty" bson:"description,omitempty"`
	Image             string  `json:"image,omitempty" bson:"image,omitempty"`
	MinimumQuantity   int     `json:"minimumQuantity,omitempty" bson:"minimumQuantity,omitempty"`
	AvailableQuantity int     `json:"availableQuantity,omitempty" bson:"availableQuantity,omitempty"`
}
