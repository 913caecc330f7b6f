package config

// ProfileDTO is the structure of an imk.yaml profile file.
// Durations are whole numbers: kill_timeout in milliseconds, threshold in seconds.
type ProfileDTO struct {
	Command     string   `yaml:"command"`
	WrapShell   bool     `yaml:"wrap_shell"`
	KillTimeout uint64   `yaml:"kill_timeout"`
	Teardown    string   `yaml:"teardown"`
	Once        bool     `yaml:"once"`
	PTY         bool     `yaml:"pty"`
	Recurse     bool     `yaml:"recurse"`
	Threshold   uint64   `yaml:"threshold"`
	Immediate   bool     `yaml:"immediate"`
	Paths       []string `yaml:"paths"`
	Ignore      []string `yaml:"ignore"`
	Backend     string   `yaml:"backend"`
	LogFormat   string   `yaml:"log_format"`
	Timings     bool     `yaml:"timings"`
}
