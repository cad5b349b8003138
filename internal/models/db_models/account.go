package db_models

// Account is a user record keyed by username. Passwords are kept verbatim,
// the login response echoes the stored record as-is.
type Account struct {
	Username    string         `json:"username" firestore:"username" gorm:"primaryKey"`
	Password    string         `json:"password" firestore:"password"`
	Age         int            `json:"age" firestore:"age"`
	Gender      string         `json:"gender" firestore:"gender"`
	Nationality string         `json:"nationality" firestore:"nationality"`
	Preferences map[string]any `json:"preferences" firestore:"preferences" gorm:"serializer:json"`
}
