package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/stackup-cli/stackup/catalog"
	"github.com/stackup-cli/stackup/core"
)

type frontendPreset struct {
	Framework string   `mapstructure:"framework"`
	Tools     []string `mapstructure:"tools"`
}

type backendPreset struct {
	Framework string   `mapstructure:"framework"`
	Database  string   `mapstructure:"database"`
	ORM       string   `mapstructure:"orm"`
	Tools     []string `mapstructure:"tools"`
}

type preset struct {
	ProjectName string          `mapstructure:"project_name"`
	ProjectType string          `mapstructure:"project_type"`
	Frontend    *frontendPreset `mapstructure:"frontend"`
	Backend     *backendPreset  `mapstructure:"backend"`
}

// LoadSelection reads a preset file and decodes it into a validated
// Selection, bypassing the interactive prompts. Option values use the
// same strings the prompts display; unrecognized values are a
// configuration error here, even though the catalogs themselves treat
// unknown keys as empty contributions.
func LoadSelection(configPath string) (*core.Selection, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var p preset
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	projectType, ok := catalog.ParseProjectType(p.ProjectType)
	if !ok {
		return nil, fmt.Errorf("unknown project type %q", p.ProjectType)
	}

	sel := &core.Selection{
		ProjectName: p.ProjectName,
		ProjectType: projectType,
	}

	if p.Frontend != nil {
		framework, ok := catalog.ParseFrontendFramework(p.Frontend.Framework)
		if !ok {
			return nil, fmt.Errorf("unknown frontend framework %q", p.Frontend.Framework)
		}
		tools, err := parseTools(p.Frontend.Tools)
		if err != nil {
			return nil, err
		}
		sel.Frontend = &core.FrontendSelection{Framework: framework, Tools: tools}
	}

	if p.Backend != nil {
		framework, ok := catalog.ParseBackendFramework(p.Backend.Framework)
		if !ok {
			return nil, fmt.Errorf("unknown backend framework %q", p.Backend.Framework)
		}
		database := catalog.DatabaseNone
		if p.Backend.Database != "" {
			if database, ok = catalog.ParseDatabase(p.Backend.Database); !ok {
				return nil, fmt.Errorf("unknown database %q", p.Backend.Database)
			}
		}
		orm := catalog.ORMNone
		if p.Backend.ORM != "" {
			if orm, ok = catalog.ParseORM(p.Backend.ORM); !ok {
				return nil, fmt.Errorf("unknown ORM %q", p.Backend.ORM)
			}
		}
		tools, err := parseTools(p.Backend.Tools)
		if err != nil {
			return nil, err
		}
		sel.Backend = &core.BackendSelection{
			Framework: framework,
			Database:  database,
			ORM:       orm,
			Tools:     tools,
		}
	}

	if err := sel.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	return sel, nil
}

func parseTools(names []string) ([]catalog.Tool, error) {
	var tools []catalog.Tool
	for _, name := range names {
		tool, ok := catalog.ParseTool(name)
		if !ok {
			return nil, fmt.Errorf("unknown tool %q", name)
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
