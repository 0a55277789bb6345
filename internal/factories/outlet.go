package factories

import (
	"fmt"

	"github.com/jaswdr/faker"
	"github.com/restunugroho/demand-forecast/internal/models"
)

var fake = faker.New()

type OutletFactory struct{}

// CreateOutlet synthesizes one outlet with a faker-generated city location.
// Used to grow the catalog past the built-in five when a larger run is wanted.
func (of *OutletFactory) CreateOutlet(index int) models.Outlet {
	return models.Outlet{
		Name:     fmt.Sprintf("Outlet %c", 'A'+index%26),
		Location: fake.Address().City(),
	}
}

// ExpandCatalog appends count synthetic outlets to the configured catalog.
func (of *OutletFactory) ExpandCatalog(outlets []models.Outlet, count int) []models.Outlet {
	expanded := make([]models.Outlet, len(outlets), len(outlets)+count)
	copy(expanded, outlets)
	for i := 0; i < count; i++ {
		expanded = append(expanded, of.CreateOutlet(len(outlets)+i))
	}
	return expanded
}
