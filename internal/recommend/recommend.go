// Package recommend emits fixed rule-based savings recommendations
// keyed by the household's assigned archetype.
package recommend

import (
	"github.com/AsmaDaoussi/ecosmart-insights/internal/analytics"
	"github.com/AsmaDaoussi/ecosmart-insights/internal/domain"
)

// For returns the recommendations for an archetype: profile-specific
// items first, then the general ones every household receives.
func For(archetype analytics.Archetype) []domain.Recommendation {
	var recs []domain.Recommendation

	if archetype == analytics.ArchetypeHigh {
		recs = append(recs,
			domain.Recommendation{
				Priority:         "high",
				Title:            "Reduce electric heating",
				Description:      "Your consumption is high. Lowering the thermostat by 1°C can save 7%.",
				PotentialSavings: "120€/month",
				Category:         "heating",
			},
			domain.Recommendation{
				Priority:         "high",
				Title:            "Shift usage to off-peak hours",
				Description:      "Schedule energy-hungry appliances during off-peak hours.",
				PotentialSavings: "45€/month",
				Category:         "timing",
			},
		)
	}
	if archetype == analytics.ArchetypeIrregular {
		recs = append(recs, domain.Recommendation{
			Priority:         "medium",
			Title:            "Install a programmable thermostat",
			Description:      "Your consumption is unpredictable. A smart thermostat could help.",
			PotentialSavings: "30€/month",
			Category:         "automation",
		})
	}

	recs = append(recs,
		domain.Recommendation{
			Priority:         "medium",
			Title:            "Switch off standby appliances",
			Description:      "Standby devices account for 10% of your bill.",
			PotentialSavings: "15€/month",
			Category:         "standby",
		},
		domain.Recommendation{
			Priority:         "low",
			Title:            "Move to LED lighting",
			Description:      "Replace all remaining bulbs with LEDs.",
			PotentialSavings: "10€/month",
			Category:         "lighting",
		},
	)
	return recs
}
