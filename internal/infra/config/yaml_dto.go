package config

type yamlConfig struct {
	Rot13 struct {
		Output struct {
			TrailingNewline *bool `yaml:"trailing_newline"`
		} `yaml:"output"`

		Log struct {
			File  string `yaml:"file"`
			Debug *bool  `yaml:"debug"`
		} `yaml:"log"`
	} `yaml:"rot13"`
}
