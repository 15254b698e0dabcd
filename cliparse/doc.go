// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: sqlite path/DSN or PostgreSQL connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminAddress: the election administrator's address (required)
  - ConfigFile: optional TOML file

# Sources

Settings are layered, highest precedence first:

	-p, -d, -t, -admin, -c    CLI flags
	PORT, DATABASE_URL,        environment variables (a .env file in the
	DATABASE_TYPE,             working directory is loaded first and never
	ADMIN_ADDRESS, CONFIG_FILE overrides variables already set)
	port, database_url, ...    TOML config file
	defaults

A config file looks like:

	port = 3318
	database_type = "sqlite"
	database_url = "quickly-vote.db"
	admin_address = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"

Unknown keys in the file are rejected.

# Validation

ParseFlags returns an error if:

  - the database URL is missing
  - the database type is not sqlite or postgres
  - ADMIN_ADDRESS is missing or not a hex address
  - the port is out of range
*/
package cliparse
