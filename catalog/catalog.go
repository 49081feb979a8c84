package catalog

import (
	"haircare-web/models"
	"haircare-web/session"
)

// Group is one treatment category and its services, in first-seen order.
// Groups render collapsed until the visitor expands them.
type Group struct {
	Treatment string           `json:"treatment"`
	Services  []models.Service `json:"services"`
	Expanded  bool             `json:"expanded"`
}

// VisibleTo filters the catalog for a role: admins see everything,
// everyone else only active services.
func VisibleTo(role session.Role, services []models.Service) []models.Service {
	if role == session.RoleAdmin {
		return services
	}
	visible := make([]models.Service, 0, len(services))
	for _, s := range services {
		if s.Active {
			visible = append(visible, s)
		}
	}
	return visible
}

// GroupByTreatment partitions services by treatment category, preserving
// the order categories first appear in.
func GroupByTreatment(services []models.Service) []Group {
	index := make(map[string]int, len(services))
	groups := make([]Group, 0)
	for _, s := range services {
		i, ok := index[s.Treatment]
		if !ok {
			i = len(groups)
			index[s.Treatment] = i
			groups = append(groups, Group{Treatment: s.Treatment})
		}
		groups[i].Services = append(groups[i].Services, s)
	}
	return groups
}
