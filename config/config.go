// Package config loads the deployment configuration: which policy is
// the default, the URL fallback sentinel, the sensitive field set, and
// any custom policies to merge into the registry.
package config

import (
	"errors"
	"fmt"

	"github.com/rinsehq/rinse/policy"
	"github.com/rinsehq/rinse/sanitize"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Policy mirrors [policy.Policy] for configuration unmarshalling.
type Policy struct {
	AllowedTags           []string
	AllowedAttributes     map[string][]string
	StripUnknownTags      bool
	StripUnknownTagBodies bool
}

type Config struct {
	// DefaultPolicy names the policy used when a call does not pick
	// one. It must be a preset or a key of Policies.
	DefaultPolicy string

	// URLFallback is the sentinel returned for rejected URLs.
	URLFallback string

	// SensitiveFields overrides the default sensitive key set.
	SensitiveFields []string

	// Policies are custom policies registered next to the presets.
	// A custom policy may reuse a preset name to replace it.
	Policies map[string]Policy
}

func (c *Config) Validate() error {
	if c.DefaultPolicy == "" {
		return errors.New("config: DefaultPolicy must not be empty")
	}

	if c.URLFallback == "" {
		return errors.New("config: URLFallback must not be empty")
	}

	if _, ok := c.Policies[c.DefaultPolicy]; !ok {
		if !policy.NewRegistry().Has(c.DefaultPolicy) {
			return fmt.Errorf("config: DefaultPolicy %q is neither a preset nor defined in Policies", c.DefaultPolicy)
		}
	}

	return nil
}

// Parse reads a "rinse" configuration file from dir on the given
// filesystem. A missing file yields the defaults; a malformed or
// invalid file is an error.
func Parse(fs afero.Fs, dir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigName("rinse")
	v.AddConfigPath(dir)

	v.SetDefault("defaultPolicy", policy.Strict)
	v.SetDefault("urlFallback", sanitize.DefaultURLFallback)

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	conf := &Config{}
	err = v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// Registry builds a policy registry with the presets plus the custom
// policies from the configuration.
func (c *Config) Registry() *policy.Registry {
	reg := policy.NewRegistry()
	for name, p := range c.Policies {
		reg.Register(name, policy.Policy{
			AllowedTags:           p.AllowedTags,
			AllowedAttributes:     p.AllowedAttributes,
			StripUnknownTags:      p.StripUnknownTags,
			StripUnknownTagBodies: p.StripUnknownTagBodies,
		})
	}
	return reg
}

// Sanitizer builds the engine described by the configuration.
func (c *Config) Sanitizer() (*sanitize.Sanitizer, error) {
	return sanitize.New(c.Registry(), sanitize.Options{
		DefaultPolicy:   c.DefaultPolicy,
		URLFallback:     c.URLFallback,
		SensitiveFields: c.SensitiveFields,
	})
}
