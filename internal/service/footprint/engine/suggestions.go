package engine

import "github.com/heartmarshall/carbonfootprint-backend/internal/domain"

// wasteSuggestionThreshold is the personal waste total (tonnes) above which
// the waste suggestion is appended.
const wasteSuggestionThreshold = 0.1

type suggestionTemplate struct {
	category    string
	title       string
	description string
	icon        string
	color       string
	multiplier  float64
}

func (t suggestionTemplate) apply(base float64) domain.Suggestion {
	return domain.Suggestion{
		Category:           t.category,
		Title:              t.title,
		Description:        t.description,
		PotentialReduction: base * t.multiplier,
		Icon:               t.icon,
		Color:              t.color,
	}
}

var (
	renewableHomeTemplate = suggestionTemplate{
		category:    "Energy",
		title:       "Switch to Renewable Energy",
		description: "Install solar panels or switch to a green energy provider to reduce electricity emissions",
		icon:        "sun",
		color:       "emerald",
		multiplier:  0.8,
	}
	electricVehicleTemplate = suggestionTemplate{
		category:    "Transport",
		title:       "Electric Vehicle",
		description: "Consider switching to an electric or hybrid vehicle to reduce transport emissions",
		icon:        "zap",
		color:       "blue",
		multiplier:  0.7,
	}
	airTravelTemplate = suggestionTemplate{
		category:    "Travel",
		title:       "Reduce Air Travel",
		description: "Use video conferencing or choose ground transport for shorter trips",
		icon:        "video",
		color:       "amber",
		multiplier:  0.5,
	}
	wasteTemplate = suggestionTemplate{
		category:    "Waste",
		title:       "Waste Reduction & Recycling",
		description: "Implement composting, increase recycling, and reduce single-use items",
		icon:        "recycle",
		color:       "emerald",
		multiplier:  0.6,
	}

	equipmentTemplate = suggestionTemplate{
		category:    "Energy Efficiency",
		title:       "Upgrade Equipment",
		description: "Replace old machinery with energy-efficient alternatives",
		icon:        "cog",
		color:       "emerald",
		multiplier:  0.3,
	}
	solarTemplate = suggestionTemplate{
		category:    "Renewable Energy",
		title:       "Solar Installation",
		description: "Install on-site renewable energy generation",
		icon:        "sun",
		color:       "blue",
		multiplier:  0.6,
	}
	processTemplate = suggestionTemplate{
		category:    "Process Optimization",
		title:       "Waste Reduction",
		description: "Implement circular economy principles and waste reduction",
		icon:        "recycle",
		color:       "amber",
		multiplier:  0.4,
	}
)

// PersonalSuggestions returns the energy, transport and travel suggestions,
// plus the waste suggestion when waste exceeds 0.1 t. Order is fixed.
func PersonalSuggestions(e domain.PersonalEmissions) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, 4)
	out = append(out,
		renewableHomeTemplate.apply(e.Electricity),
		electricVehicleTemplate.apply(e.Transport),
		airTravelTemplate.apply(e.Flights),
	)
	if e.Waste > wasteSuggestionThreshold {
		out = append(out, wasteTemplate.apply(e.Waste))
	}
	return out
}

// IndustrialSuggestions always returns three suggestions in fixed order.
func IndustrialSuggestions(e domain.IndustrialEmissions) []domain.Suggestion {
	return []domain.Suggestion{
		equipmentTemplate.apply(e.Scope2),
		solarTemplate.apply(e.Scope2),
		processTemplate.apply(e.Scope3),
	}
}
