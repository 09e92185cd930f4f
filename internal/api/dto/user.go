package dto

type AdminStatus struct {
	Admin bool `json:"admin"`
}

type UserTokenResponse struct {
	Result *UpdateResult `json:"result"`
	Token  string        `json:"token"`
}
