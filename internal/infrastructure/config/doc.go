// Package config handles loading and validating teapot service configuration.
//
// This package manages:
//   - Loading configuration from YAML files
//   - Overriding with environment variables
//   - Validation of settings
//   - Default value handling
//
// The service holds all state in memory and talks to nothing external, so
// every setting has a working default: it starts with no config file at all
// via Default().
//
// Performance Characteristics:
//   - Configuration is loaded once at startup
//   - No runtime overhead after initial load
//
// Usage:
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Addr())
package config
