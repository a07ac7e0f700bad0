package domain

import "time"

// Profile es el sujeto de un test de ADN (por ejemplo, un hijo del usuario).
// Un usuario puede tener varios perfiles; el cliente selecciona uno a la vez.
type Profile struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Gender    string     `json:"gender,omitempty"`
	HeightCm  int        `json:"height_cm,omitempty"`
	WeightKg  int        `json:"weight_kg,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
