package domain

type Review struct {
	Model  `bson:",inline"`
	Name   string  `json:"name,omitempty" bson:"name,omitempty"`
	Email  string  `json:"email,omitempty" bson:"email,omitempty"`
	Image  string  `json:"image,omitempty" bson:"image,omitempty"`
	Review string  `json:"review,omitempty" bson:"review,omitempty"`
	Rating float64 `json:"rating,omitempty" bson:"rating,omitempty"`
}
