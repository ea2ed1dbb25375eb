package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/imptrack/landedcost/pkg/costing"
	"github.com/imptrack/landedcost/pkg/infrastructure/repositories/memory"
)

// Config carries the runtime settings read from the environment.
type Config struct {
	// UseOverrides gates whether the persisted basis override table is
	// consulted before the keyword rules.
	UseOverrides bool
	// OverridesFile is the path to the JSON override table; empty means none.
	OverridesFile string
	LogLevel      string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		OverridesFile: os.Getenv("LANDEDCOST_OVERRIDES_FILE"),
		LogLevel:      os.Getenv("LANDEDCOST_LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}

	if raw := os.Getenv("LANDEDCOST_USE_OVERRIDES"); raw != "" {
		useOverrides, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LANDEDCOST_USE_OVERRIDES: %s (expected true or false)", raw)
		}
		cfg.UseOverrides = useOverrides
	}

	if cfg.UseOverrides && cfg.OverridesFile == "" {
		return nil, fmt.Errorf("LANDEDCOST_USE_OVERRIDES is set but LANDEDCOST_OVERRIDES_FILE is empty")
	}

	return cfg, nil
}

// overrideRecord is one entry of the JSON override table.
type overrideRecord struct {
	Category string `json:"category" validate:"required,oneof=freight customs insurance storage tax other"`
	Basis    string `json:"basis" validate:"required,oneof=units weight volume value boxes"`
}

// LoadOverrides reads the JSON override table and returns it loaded into an
// in-memory override repository.
func LoadOverrides(filename string) (*memory.OverrideRepository, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", filename, err)
	}

	var records []overrideRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", filename, err)
	}

	validate := validator.New()
	overrides := make(map[costing.ExpenseCategory]costing.Basis, len(records))
	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			return nil, fmt.Errorf("overrides entry %d: %w", i, err)
		}

		category, err := costing.ParseExpenseCategory(record.Category)
		if err != nil {
			return nil, fmt.Errorf("overrides entry %d: %w", i, err)
		}
		basis, err := costing.ParseBasis(record.Basis)
		if err != nil {
			return nil, fmt.Errorf("overrides entry %d: %w", i, err)
		}

		if _, exists := overrides[category]; exists {
			return nil, fmt.Errorf("overrides entry %d: duplicate category %s", i, record.Category)
		}
		overrides[category] = basis
	}

	repo := memory.NewOverrideRepository()
	if err := repo.LoadOverrides(overrides); err != nil {
		return nil, fmt.Errorf("failed to load overrides: %w", err)
	}
	return repo, nil
}
