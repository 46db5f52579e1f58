package main

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`

	// File is the config file that was read, if any.
	File string `yaml:"-" mapstructure:"-"`
}

// filterFlags holds the raw command-line filter options before they are
// turned into filter.Criteria.
type filterFlags struct {
	magnitude        float64
	includeAsterisms bool
	dryRun           bool
	diff             bool
}
