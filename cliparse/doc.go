// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: local UI listen port (default: 3319)
  - APIBaseURL: backend REST base URL (default: http://localhost:8080/api)
  - DatabaseType: state store driver, sqlite or postgres (default: sqlite)
  - DatabaseURL: state store location (default: file:betboard.db)
  - PageSize: bets per list page (default: 12)

# CLI Flags

	-p      Local UI port
	-api    Backend API base URL
	-t      State database type
	-d      State database URL
	-size   Bets per page

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	API_BASE_URL  → -api
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	PAGE_SIZE     → -size

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over a .env file.

# Validation

ParseFlags returns an error when:

  - PORT or PAGE_SIZE is not a number, or out of range
  - the database type is neither sqlite nor postgres
  - postgres is selected without a DATABASE_URL
*/
package cliparse
