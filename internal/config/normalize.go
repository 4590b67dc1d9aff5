package config

import "strings"

func (c *Config) normalize() error {
	c.Conversion.Format = strings.ToUpper(strings.TrimSpace(c.Conversion.Format))
	if c.Conversion.Format == "JPEG" {
		c.Conversion.Format = "JPG"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = defaultHistoryPath()
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return err
	}
	c.History.Path = expanded
	return nil
}
