package models

import (
	"gorm.io/gorm"
)

type Advisor struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null"`
	Title        string     `json:"title"`
	Email        string     `json:"email"`
	DepartmentID uint       `json:"department_id" gorm:"index"`
	Department   Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Reviews      []Review   `json:"reviews,omitempty" gorm:"foreignKey:AdvisorID"`
}
