package model

import (
	"time"
)

const (
	RoleFree = "free"
	RolePro  = "pro"
)

const (
	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionCancelled = "cancelled"
)

type User struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	HashedPassword     string    `json:"-"` // Not exposed
	Role               string    `json:"role"`
	SubscriptionStatus string    `json:"subscription_status"`
	ProfileImage       *string   `json:"profile_image,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
