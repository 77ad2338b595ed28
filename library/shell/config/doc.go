// Package config loads the runtime configuration of the library binaries and builds
// the Postgres connection pools and the logger from it.
//
// Values come from the environment, optionally seeded from a .env file.
// Bcrypt hashes contain '$', so single-quote them in .env files to keep godotenv from expanding them.
package config
