package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin    = "admin"
	RolePersonel = "personel"

	SalaryMonthly = "monthly"
	SalaryWeekly  = "weekly"
)

// Financials holds the payroll figures of one staff member. Extras
// (insurance, benefits, transport, overtime) are flat amounts per pay period.
type Financials struct {
	Salary     float64 `bson:"salary" json:"salary"`
	SalaryType string  `bson:"salarytype" json:"salaryType"`
	Insurance  float64 `bson:"insurance" json:"insurance"`
	Benefits   float64 `bson:"benefits" json:"benefits"`
	Transport  float64 `bson:"transport" json:"transport"`
	Overtime   float64 `bson:"overtime" json:"overtime"`
}

type User struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username             string             `bson:"username" json:"username"`
	Email                string             `bson:"email" json:"email"`
	Password             string             `bson:"password,omitempty" json:"password,omitempty"`
	Role                 string             `bson:"role" json:"role"`
	Financials           Financials         `bson:"financials" json:"financials"`
	ResetPasswordToken   string             `bson:"resetpasswordtoken,omitempty" json:"-"`
	ResetPasswordExpires time.Time          `bson:"resetpasswordexpires,omitempty" json:"-"`
	CreatedAt            time.Time          `bson:"createdat" json:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedat" json:"updatedAt"`
}

// ResetCodeValid reports whether code matches the stored recovery code and
// the expiry window is still open. An expired code is rejected even when the
// digits match.
func (u *User) ResetCodeValid(code string, now time.Time) bool {
	if code == "" || u.ResetPasswordToken == "" {
		return false
	}
	if u.ResetPasswordToken != code {
		return false
	}
	return now.Before(u.ResetPasswordExpires)
}

type StaffCostStats struct {
	TotalUsers       int     `json:"totalUsers"`
	TotalMonthlyCost float64 `json:"totalMonthlyCost"`
	TotalWeeklyCost  float64 `json:"totalWeeklyCost"`
}

// StaffCosts aggregates payroll cost across all personnel. Weekly salaries
// are normalized to a monthly figure (x4) and monthly salaries to a weekly
// figure (/4). Extras are added unmultiplied on the monthly side and divided
// by four on the weekly side regardless of salary type.
func StaffCosts(users []User) StaffCostStats {
	stats := StaffCostStats{TotalUsers: len(users)}
	for _, u := range users {
		f := u.Financials
		extras := f.Insurance + f.Benefits + f.Transport + f.Overtime
		if f.SalaryType == SalaryWeekly {
			stats.TotalMonthlyCost += f.Salary*4 + extras
			stats.TotalWeeklyCost += f.Salary + extras/4
		} else {
			stats.TotalMonthlyCost += f.Salary + extras
			stats.TotalWeeklyCost += f.Salary/4 + extras/4
		}
	}
	return stats
}
