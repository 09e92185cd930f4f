package domain

// Order references a tool and a user by value only; neither is checked
// against the tools or users collections.
type Order struct {
	Model     `bson:",inline"`
	UserEmail string  `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	UserName  string  `json:"userName,omitempty" bson:"userName,omitempty"`
	ToolID    string  `json:"toolId,omitempty" bson:"toolId,omitempty"`
	ToolName  string  `json:"toolName,omitempty" bson:"toolName,omitempty"`
	Quantity  int     `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Price     float64 `json:"price,omitempty" bson:"price,omitempty"`
	Address   string  `json:"address,omitempty" bson:"address,omitempty"`
	Phone     string  `json:"phone,omitempty" bson:"phone,omitempty"`
}
