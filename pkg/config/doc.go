// Package config loads settings from the environment and from YAML profiles.
//
// Load parses environment variables into a struct tagged for
// github.com/caarlos0/env/v11, after loading a .env file from the working
// directory if there is one. Parsed values are cached per type, so later
// calls for the same type are cheap and agree with each other. LoadEnv loads
// extra dotenv files explicitly.
//
// LoadYAML decodes a generation profile with gopkg.in/yaml.v3. Fields absent
// from the file keep the values already in the target, which lets a profile
// override only part of an environment-derived config.
package config
