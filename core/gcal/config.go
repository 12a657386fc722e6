package gcal

// Config holds configuration for the Google Calendar origin.
type Config struct {
	// CalendarID is the target calendar. "primary" selects the account's
	// default calendar.
	CalendarID string `mapstructure:"calendar_id" default:"primary"`
	// CredentialsFile is the path to the Google service credentials JSON.
	CredentialsFile string `mapstructure:"credentials_file" default:".credentials/credentials.json"`
}
