package shared

// UserID is a Discord user snowflake.
type UserID string

// GuildID is a Discord guild snowflake.
type GuildID string

// ChannelID is a Discord channel snowflake.
type ChannelID string

func (id UserID) String() string    { return string(id) }
func (id GuildID) String() string   { return string(id) }
func (id ChannelID) String() string { return string(id) }
