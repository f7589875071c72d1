// Package config loads group definitions from configuration files and
// builds them into a registry.
//
// It uses Viper to read YAML, JSON, or TOML files of the shape:
//
//	groups:
//	  production:
//	    refs:
//	      db_host: prod-db.example.com
//	      debug: false
//	    modules: [clock]
//	  development:
//	    refs:
//	      db_host: localhost
//	      debug: true
//
// Environment variables with the REFGROUP_ prefix override file values, and
// an optional .env file is loaded first via godotenv:
//
//	def, err := config.Load("groups.yaml", config.WithEnvFile(".env"))
//	if err != nil { ... }
//	if err := def.Apply(reg); err != nil { ... }
package config
