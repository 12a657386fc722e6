// Package config provides configuration management for the event sync
// service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Notion: database-origin credentials and property names
//   - Calendar: calendar-origin credentials and calendar ID
//   - Sync: reconciliation engine settings (fetch window)
//   - Log: logging level and format
//
// Defaults come from `default` struct tags on each section's Config;
// environment variables override them using underscore-joined keys
// (e.g. NOTION_DATABASE_ID -> notion.database_id).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Calendar.CalendarID)
package config
