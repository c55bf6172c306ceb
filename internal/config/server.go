package config

const defaultPort = 8080

type ServerConfig struct {
	HTTPPort int `yaml:"port"`
}

func (s *ServerConfig) Port() int {
	if s.HTTPPort == 0 {
		return defaultPort
	}
	return s.HTTPPort
}
