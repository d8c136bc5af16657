package models

import (
	"strings"

	"gorm.io/gorm"
)

type University struct {
	gorm.Model
	Name        string       `json:"name" gorm:"unique;not null"`
	Domain      string       `json:"domain" gorm:"unique;not null"` // e.g. "stanford.edu", used to verify student emails
	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:UniversityID"`
}

// MatchesEmail reports whether the address belongs to this university's
// domain. Subdomains count, so cs.stanford.edu addresses match stanford.edu.
func (u *University) MatchesEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || u.Domain == "" {
		return false
	}
	host := strings.ToLower(email[at+1:])
	domain := strings.ToLower(u.Domain)
	return host == domain || strings.HasSuffix(host, "."+domain)
}

type Department struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null"`
	UniversityID uint       `json:"university_id" gorm:"index"`
	University   University `json:"university,omitempty" gorm:"foreignKey:UniversityID"`
	Advisors     []Advisor  `json:"advisors,omitempty" gorm:"foreignKey:DepartmentID"`
}
