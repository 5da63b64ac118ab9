package dto

import "time"

type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RequestEmailDTO struct {
	Email string `json:"email" validate:"required,email"`
}

type ContactDTO struct {
	FirstName        string    `json:"first_name" validate:"required,max=64"`
	LastName         string    `json:"last_name" validate:"max=64"`
	Email            string    `json:"email" validate:"omitempty,email"`
	PhoneNumbers     string    `json:"phone_numbers" validate:"max=255"`
	BirthdayDate     time.Time `json:"birthday_date" validate:"required"`
	OtherDescription string    `json:"other_description" validate:"max=1024"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}
