package domain

type Wish struct {
	Model     `bson:",inline"`
	UserEmail string  `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	ToolID    string  `json:"toolId,omitempty" bson:"toolId,omitempty"`
	ToolName  string  `json:"toolName,omitempty" bson:"toolName,omitempty"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	Price     float64 `json:"price,omitempty" bson:"price,omitempty"`
}
