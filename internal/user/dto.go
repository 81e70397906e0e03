package user

import "github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"

type LoginDTO struct {
	Email string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	PersonID    string `json:"person_id"`
	Name        string `json:"name"`
	Level       string `json:"level"`
}

type UpdateProfileDTO struct {
	Email               *string `json:"email"`
	Timezone            *string `json:"timezone"`
	NotificationEnabled *bool   `json:"notification_enabled"`
}

type Profile struct {
	Person        whygo.Person      `json:"person"`
	Department    *whygo.Department `json:"department"`
	Manager       *whygo.Person     `json:"manager"`
	DirectReports []whygo.Person    `json:"direct_reports"`
}
