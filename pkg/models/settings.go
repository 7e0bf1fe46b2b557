package models

// Settings represents the application configuration
type Settings struct {
	DataDir string     `yaml:"data_dir" mapstructure:"data_dir"`
	LogFile string     `yaml:"log_file" mapstructure:"log_file"`
	UI      UISettings `yaml:"ui" mapstructure:"ui"`
}

// UISettings controls UI preferences
type UISettings struct {
	MenuPosition        string `yaml:"menu_position" mapstructure:"menu_position"` // bottom-left, bottom-right, top-left, top-right
	ManuscriptSort      string `yaml:"manuscript_sort" mapstructure:"manuscript_sort"`
	ManuscriptDirection string `yaml:"manuscript_direction" mapstructure:"manuscript_direction"` // "asc" or "desc"
	ShowHelp            bool   `yaml:"show_help" mapstructure:"show_help"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		DataDir: ".inkpress",
		LogFile: "",
		UI: UISettings{
			MenuPosition:        "bottom-right",
			ManuscriptSort:      "submitted_date",
			ManuscriptDirection: "desc",
			ShowHelp:            true,
		},
	}
}
