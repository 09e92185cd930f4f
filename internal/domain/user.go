package domain

const RoleAdmin = "admin"

// User is keyed by Email in practice. The store does not enforce
// uniqueness; writes go through an upsert on the email filter instead.
type User struct {
	Model     `bson:",inline"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	Name      string `json:"name,omitempty" bson:"name,omitempty"`
	Image     string `json:"image,omitempty" bson:"image,omitempty"`
	Education string `json:"education,omitempty" bson:"education,omitempty"`
	Location  string `json:"location,omitempty" bson:"location,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
