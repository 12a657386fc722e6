package notion

// Config holds configuration for the Notion database origin.
type Config struct {
	// Token is the Notion integration token.
	Token string `mapstructure:"token" default:""`
	// DatabaseID is the target Notion database ID.
	DatabaseID string `mapstructure:"database_id" default:""`
	// TitleProperty is the name of the title property.
	TitleProperty string `mapstructure:"title_property" default:"Calendar"`
	// DateProperty is the name of the date range property.
	DateProperty string `mapstructure:"date_property" default:"Date"`
	// DoneProperty is the name of the completion checkbox property.
	DoneProperty string `mapstructure:"done_property" default:"Done"`
	// TagsProperty is the name of the multi-select tags property.
	TagsProperty string `mapstructure:"tags_property" default:"Tags"`
}
