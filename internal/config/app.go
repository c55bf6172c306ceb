package config

const defaultTimeZone = "Europe/Kiev"

type AppConfig struct {
	TimeZoneName string `yaml:"time-zone"`
}

func (s *AppConfig) TimeZone() string {
	if s.TimeZoneName == "" {
		return defaultTimeZone
	}
	return s.TimeZoneName
}
