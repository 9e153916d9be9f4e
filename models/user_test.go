package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStaffCosts(t *testing.T) {
	t.Run("monthly and weekly staff", func(t *testing.T) {
		users := []User{
			{Financials: Financials{Salary: 1000, SalaryType: SalaryMonthly}},
			{Financials: Financials{Salary: 1000, SalaryType: SalaryWeekly}},
		}

		stats := StaffCosts(users)

		assert.Equal(t, 2, stats.TotalUsers)
		// monthly user contributes 1000, weekly user 1000*4
		assert.Equal(t, 5000.0, stats.TotalMonthlyCost)
		// monthly user contributes 1000/4, weekly user 1000
		assert.Equal(t, 1250.0, stats.TotalWeeklyCost)
	})

	t.Run("extras are unmultiplied monthly and quartered weekly", func(t *testing.T) {
		users := []User{
			{Financials: Financials{
				Salary:     2000,
				SalaryType: SalaryMonthly,
				Insurance:  200,
				Benefits:   100,
				Transport:  60,
				Overtime:   40,
			}},
			{Financials: Financials{
				Salary:     500,
				SalaryType: SalaryWeekly,
				Insurance:  80,
				Benefits:   20,
			}},
		}

		stats := StaffCosts(users)

		// monthly: 2000 + 400 extras; weekly staff: 500*4 + 100 extras
		assert.Equal(t, 2400.0+2100.0, stats.TotalMonthlyCost)
		// monthly: 2000/4 + 400/4; weekly staff: 500 + 100/4
		assert.Equal(t, 600.0+525.0, stats.TotalWeeklyCost)
	})

	t.Run("no staff", func(t *testing.T) {
		stats := StaffCosts(nil)
		assert.Equal(t, 0, stats.TotalUsers)
		assert.Equal(t, 0.0, stats.TotalMonthlyCost)
		assert.Equal(t, 0.0, stats.TotalWeeklyCost)
	})
}

func TestResetCodeValid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("matching code inside window", func(t *testing.T) {
		user := User{ResetPasswordToken: "123456", ResetPasswordExpires: now.Add(5 * time.Minute)}
		assert.True(t, user.ResetCodeValid("123456", now))
	})

	t.Run("expired code rejected even when digits match", func(t *testing.T) {
		user := User{ResetPasswordToken: "123456", ResetPasswordExpires: now.Add(-time.Minute)}
		assert.False(t, user.ResetCodeValid("123456", now))
	})

	t.Run("wrong code", func(t *testing.T) {
		user := User{ResetPasswordToken: "123456", ResetPasswordExpires: now.Add(5 * time.Minute)}
		assert.False(t, user.ResetCodeValid("654321", now))
	})

	t.Run("no code issued", func(t *testing.T) {
		user := User{}
		assert.False(t, user.ResetCodeValid("", now))
		assert.False(t, user.ResetCodeValid("123456", now))
	})
}
