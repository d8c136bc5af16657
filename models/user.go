package models

import (
	"time"
)

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name"`
	Email             string    `json:"email" gorm:"unique"`
	Password          string    `json:"password,omitempty"`
	IsVerifiedStudent bool      `json:"is_verified_student"`
	RoleID            uint      `json:"role_id"`
	Role              Role      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
