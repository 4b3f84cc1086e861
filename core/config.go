// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
	"strconv"

	"github.com/devblok/koruinfo/device"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
)

// Environment keys read by LoadConfiguration
const (
	EnvApplicationName    = "KORUINFO_APP_NAME"
	EnvApplicationVersion = "KORUINFO_APP_VERSION"
	EnvEngineName         = "KORUINFO_ENGINE_NAME"
	EnvEngineVersion      = "KORUINFO_ENGINE_VERSION"
	EnvAPIVersion         = "KORUINFO_API_VERSION"
	EnvBetaExtensions     = "KORUINFO_BETA_EXTENSIONS"
	EnvParallel           = "KORUINFO_PARALLEL"
	EnvFormat             = "KORUINFO_FORMAT"
	EnvOutput             = "KORUINFO_OUTPUT"
	EnvLogLevel           = "KORUINFO_LOG_LEVEL"
)

// Configuration defines everything a koruinfo run can be tuned with
type Configuration struct {
	Application ApplicationConfiguration
	Inventory   InventoryConfiguration
	Report      ReportConfiguration
	LogLevel    string
}

// ApplicationConfiguration is the identity presented to the driver stack.
// Versions are written as major.minor[.patch]
type ApplicationConfiguration struct {
	Name          string
	Version       string
	EngineName    string
	EngineVersion string
	APIVersion    string
}

// InventoryConfiguration controls device inspection
type InventoryConfiguration struct {
	// BetaExtensions enables the provisional video queue capabilities.
	// Off by default, they belong to an unstable extension surface.
	BetaExtensions bool
	Parallel       bool
}

// ReportConfiguration controls how the inventory is written out
type ReportConfiguration struct {
	// Format is one of text, json or yaml
	Format string

	// Output is a file path. Empty or "-" means stdout,
	// a .lz4 suffix compresses the output.
	Output string
}

// DefaultConfiguration is used for every key not found in the environment
var DefaultConfiguration = Configuration{
	Application: ApplicationConfiguration{
		Name:          "koruinfo",
		Version:       "1.0.0",
		EngineName:    "No Engine",
		EngineVersion: "1.0.0",
		APIVersion:    "1.0",
	},
	Report: ReportConfiguration{
		Format: "text",
	},
	LogLevel: "warning",
}

// LoadConfiguration loads the given dotenv files into the environment and
// builds a Configuration from it. Variables already set in the environment
// take precedence over the files.
func LoadConfiguration(envFiles ...string) (Configuration, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Configuration{}, fmt.Errorf("loading env files: %w", err)
		}
	}
	envy.Reload()

	def := DefaultConfiguration
	cfg := Configuration{
		Application: ApplicationConfiguration{
			Name:          envy.Get(EnvApplicationName, def.Application.Name),
			Version:       envy.Get(EnvApplicationVersion, def.Application.Version),
			EngineName:    envy.Get(EnvEngineName, def.Application.EngineName),
			EngineVersion: envy.Get(EnvEngineVersion, def.Application.EngineVersion),
			APIVersion:    envy.Get(EnvAPIVersion, def.Application.APIVersion),
		},
		Report: ReportConfiguration{
			Format: envy.Get(EnvFormat, def.Report.Format),
			Output: envy.Get(EnvOutput, def.Report.Output),
		},
		LogLevel: envy.Get(EnvLogLevel, def.LogLevel),
	}

	var err error
	if cfg.Inventory.BetaExtensions, err = envBool(EnvBetaExtensions, def.Inventory.BetaExtensions); err != nil {
		return Configuration{}, err
	}
	if cfg.Inventory.Parallel, err = envBool(EnvParallel, def.Inventory.Parallel); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// ApplicationInfo converts the textual identity into a device.ApplicationInfo
func (c Configuration) ApplicationInfo() (device.ApplicationInfo, error) {
	info := device.ApplicationInfo{
		ApplicationName: c.Application.Name,
		EngineName:      c.Application.EngineName,
	}
	var err error
	if info.ApplicationVersion, err = device.ParseVersion(c.Application.Version); err != nil {
		return info, fmt.Errorf("application version: %w", err)
	}
	if info.EngineVersion, err = device.ParseVersion(c.Application.EngineVersion); err != nil {
		return info, fmt.Errorf("engine version: %w", err)
	}
	if info.APIVersion, err = device.ParseVersion(c.Application.APIVersion); err != nil {
		return info, fmt.Errorf("API version: %w", err)
	}
	return info, nil
}

func envBool(key string, fallback bool) (bool, error) {
	raw := envy.Get(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}
