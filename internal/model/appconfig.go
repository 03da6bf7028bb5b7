package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default layout settings applied to new projects
	DefaultSheetWidth  float64    `json:"default_sheet_width"`
	DefaultSheetHeight float64    `json:"default_sheet_height"`
	DefaultResolution  float64    `json:"default_resolution"`
	DefaultKerfWidth   float64    `json:"default_kerf_width"`
	DefaultEdgeTrim    float64    `json:"default_edge_trim"`
	DefaultHoleMetric  HoleMetric `json:"default_hole_metric"`

	// Application preferences
	RecentProjects []string `json:"recent_projects"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSheetWidth:  2440,
		DefaultSheetHeight: 1220,
		DefaultResolution:  defaults.Resolution,
		DefaultKerfWidth:   defaults.KerfWidth,
		DefaultEdgeTrim:    defaults.EdgeTrim,
		DefaultHoleMetric:  defaults.HoleMetric,
		RecentProjects:     []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a Settings
// struct. Used when creating a new project so it inherits saved defaults.
func (c AppConfig) ApplyToSettings(s *Settings) {
	s.Resolution = c.DefaultResolution
	s.KerfWidth = c.DefaultKerfWidth
	s.EdgeTrim = c.DefaultEdgeTrim
	s.HoleMetric = c.DefaultHoleMetric
}

// AddRecentProject prepends a path to the recent projects list, removing
// duplicates and capping the list at max entries.
func (c *AppConfig) AddRecentProject(path string, max int) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path && len(recent) < max {
			recent = append(recent, p)
		}
	}
	c.RecentProjects = recent
}
