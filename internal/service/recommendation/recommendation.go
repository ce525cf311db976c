package recommendation

import "github.com/ougirez/energy-dashboard/internal/domain"

var recommendations = [...]domain.Recommendation{
	{Text: "Upgrade to high-efficiency HVAC", Label: "HVAC upgrade"},
	{Text: "Add smart occupancy sensors", Label: "Sensors"},
	{Text: "Implement energy analytics dashboard", Label: "Monitoring"},
	{Text: "Improve building envelope insulation", Label: "Insulation"},
}

// List returns a fresh copy of the fixed recommendations, in display order.
func List() []domain.Recommendation {
	out := make([]domain.Recommendation, len(recommendations))
	copy(out, recommendations[:])
	return out
}

func Texts() []string {
	out := make([]string, 0, len(recommendations))
	for _, r := range recommendations {
		out = append(out, r.Text)
	}
	return out
}
