// Package alert decides which newly detected trends deserve a notification.
// Only entities created in the current pass are evaluated, so a trend alerts once in its
// lifetime no matter how long it stays active or how often it comes back.
package alert

import "github.com/umputun/politrend/pkg/domain"

// ShouldAlert checks if the entity ranks at or above the threshold and its category is enabled
func ShouldAlert(e *domain.TrackedEntity, s domain.Settings) bool {
	if e == nil {
		return false
	}
	return e.CurrentRank <= s.MinRank && s.CategoryEnabled(e.Category)
}

// Qualifying returns created entities passing ShouldAlert, order preserved
func Qualifying(created []*domain.TrackedEntity, s domain.Settings) []*domain.TrackedEntity {
	var res []*domain.TrackedEntity
	for _, e := range created {
		if ShouldAlert(e, s) {
			res = append(res, e)
		}
	}
	return res
}
