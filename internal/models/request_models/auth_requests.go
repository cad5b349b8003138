package request_models

type SignUpRequest struct {
	Username    string         `json:"username"`
	Password    string         `json:"password"`
	Age         int            `json:"age"`
	Gender      string         `json:"gender"`
	Nationality string         `json:"nationality"`
	Preferences map[string]any `json:"preferences"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
