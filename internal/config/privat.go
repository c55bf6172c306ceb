package config

const (
	defaultBaseURL    = "https://api.privatbank.ua/p24api"
	defaultFormatFlag = "json"
	defaultDateLayout = "02.01.2006"
)

type PrivatConfig struct {
	BaseURL    string `yaml:"url"`
	FormatFlag string `yaml:"format"`
	DateFmt    string `yaml:"date-layout"`
}

func (p *PrivatConfig) URL() string {
	if p.BaseURL == "" {
		return defaultBaseURL
	}
	return p.BaseURL
}

// Format is the bare query flag selecting the API response format.
func (p *PrivatConfig) Format() string {
	if p.FormatFlag == "" {
		return defaultFormatFlag
	}
	return p.FormatFlag
}

func (p *PrivatConfig) DateLayout() string {
	if p.DateFmt == "" {
		return defaultDateLayout
	}
	return p.DateFmt
}
