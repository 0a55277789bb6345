package models

// Outlet is a fixed sales point. The catalog is immutable for a run.
type Outlet struct {
	Name     string `json:"name" mapstructure:"name"`
	Location string `json:"location" mapstructure:"location"`
}

// DefaultOutlets returns the built-in five-outlet catalog.
func DefaultOutlets() []Outlet {
	return []Outlet{
		{Name: "Outlet A", Location: "Palu Utara"},
		{Name: "Outlet B", Location: "Palu Selatan"},
		{Name: "Outlet C", Location: "Palu Barat"},
		{Name: "Outlet D", Location: "Palu Timur"},
		{Name: "Outlet E", Location: "Palu Tengah"},
	}
}

// DefaultMenuItems returns the built-in menu.
func DefaultMenuItems() []string {
	return []string{"Sup Kacang Merah", "Bubur Manado", "Ikan Bakar", "Minuman Saraba"}
}

// DefaultOrderTypes returns the supported order channels.
func DefaultOrderTypes() []string {
	return []string{OrderTypeApps, OrderTypeOffline}
}
