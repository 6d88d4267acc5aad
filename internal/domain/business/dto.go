package business

import "strings"

// CreateBusinessInput is the registration payload held while the OTP is pending.
type CreateBusinessInput struct {
	BusinessName string  `json:"business_name" binding:"required,max=255" example:"Acme Staffing"`
	Email        string  `json:"email" binding:"required,email" example:"owner@acme.io"`
	Phone        string  `json:"phone" binding:"required,max=20" example:"+1-555-0100"`
	Address      string  `json:"address" binding:"required,max=255" example:"1 Main St"`
	City         string  `json:"city" binding:"required,max=100" example:"Austin"`
	State        string  `json:"state" binding:"required,max=100" example:"TX"`
	ZipCode      string  `json:"zip_code" binding:"required,max=20" example:"73301"`
	Country      string  `json:"country" binding:"required,max=100" example:"US"`
	Description  *string `json:"description,omitempty" example:"Event staffing"`
}

// NormalizedEmail is the key used for uniqueness checks and the pending store.
func (in CreateBusinessInput) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(in.Email))
}

func (in CreateBusinessInput) ToModel() *Business {
	return &Business{
		BusinessName: in.BusinessName,
		Email:        in.NormalizedEmail(),
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		ZipCode:      in.ZipCode,
		Country:      in.Country,
		Description:  in.Description,
		IsActive:     true,
	}
}

type VerifyRegistrationInput struct {
	Email string `json:"email" binding:"required,email" example:"owner@acme.io"`
	OTP   string `json:"otp" binding:"required,len=6,numeric" example:"482913"`
}

// RegistrationResult is returned once the code is confirmed. SetupToken is
// single-use and links the first admin account to the business.
type RegistrationResult struct {
	Business   Business `json:"business"`
	SetupToken string   `json:"setup_token"`
}

type UpdateBusinessInput struct {
	BusinessName *string `json:"business_name,omitempty" binding:"omitempty,max=255"`
	Phone        *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address      *string `json:"address,omitempty" binding:"omitempty,max=255"`
	City         *string `json:"city,omitempty" binding:"omitempty,max=100"`
	State        *string `json:"state,omitempty" binding:"omitempty,max=100"`
	ZipCode      *string `json:"zip_code,omitempty" binding:"omitempty,max=20"`
	Country      *string `json:"country,omitempty" binding:"omitempty,max=100"`
	Description  *string `json:"description,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

// Apply copies the non-nil fields onto b.
func (in UpdateBusinessInput) Apply(b *Business) {
	if in.BusinessName != nil {
		b.BusinessName = *in.BusinessName
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.City != nil {
		b.City = *in.City
	}
	if in.State != nil {
		b.State = *in.State
	}
	if in.ZipCode != nil {
		b.ZipCode = *in.ZipCode
	}
	if in.Country != nil {
		b.Country = *in.Country
	}
	if in.Description != nil {
		b.Description = in.Description
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}
}
