// Package config loads runtime configuration for the papers CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c/-config, or by the CONFIG environment
//     variable when neither flag is given.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Papers API
//	-d string   path of the local vote ledger (SQLite)
//	-o string   download directory
//	-t int      request timeout (seconds, 0 = transport default)
//	-i int      online status check interval (seconds, 0 = off)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://jssia-backend.onrender.com",
//	  "ledger_path": "votes.db",
//	  "download_dir": "download",
//	  "request_timeout": "30s",
//	  "online_check_interval": "10s",
//	  "log_level": "info"
//	}
package config
