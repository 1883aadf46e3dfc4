package config

import (
	"fmt"
	"strings"

	"github.com/augmented-unreality/aurdeps/internal/messages"
)

// Validate ensures the config is usable.
func (c *Config) Validate(path string) error {
	if strings.TrimSpace(c.OpenCV.CMake) == "" {
		return fmt.Errorf(messages.ConfigCMakeRequiredFmt, path)
	}
	if strings.TrimSpace(c.OpenCV.WindowsGenerator) == "" {
		return fmt.Errorf(messages.ConfigGeneratorRequiredFmt, path)
	}
	if c.OpenCV.MakeJobs < 1 {
		return fmt.Errorf(messages.ConfigMakeJobsInvalidFmt, path, c.OpenCV.MakeJobs)
	}
	return nil
}
