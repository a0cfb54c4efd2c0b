package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/urban-tools/congestion-atlas/pkg/models/domain"
	"github.com/urban-tools/congestion-atlas/pkg/services/stats"
)

// Profile is the optional analysis profile file. Keys the file omits keep
// their defaults, so a partial profile is fine.
type Profile struct {
	PolicyStart string  `mapstructure:"policy_start"`
	Alpha       float64 `mapstructure:"alpha"`
	Seed        uint64  `mapstructure:"seed"`
	OutputDir   string  `mapstructure:"output_dir"`
}

// Default returns the profile used when no file is given.
func Default() Profile {
	return Profile{
		PolicyStart: domain.DefaultPolicyStart.Format(domain.DateLayout),
		Alpha:       stats.DefaultAlpha,
		Seed:        0,
		OutputDir:   ".",
	}
}

// LoadProfile reads a profile file in any format viper recognizes by
// extension, filling omitted keys from Default.
func LoadProfile(path string) (Profile, error) {
	profile := Default()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := v.Unmarshal(&profile); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile: %w", err)
	}

	return profile, nil
}

// PolicyDate parses the profile's policy start bound.
func (p Profile) PolicyDate() (time.Time, error) {
	return domain.ParseDate(p.PolicyStart)
}
