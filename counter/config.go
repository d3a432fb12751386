package counter

// Default table and attribute names, matching the conventional layout of a
// single counters table: one row per counter, keyed by string id, with the
// running total in a number attribute.
const (
	DefaultTableName      = "AtomicCounters"
	DefaultKeyAttribute   = "id"
	DefaultCountAttribute = "lastValue"
)

// Config holds the table layout used to address counters.
type Config struct {
	// TableName is the DynamoDB table holding all counters.
	// Default: "AtomicCounters"
	TableName string

	// KeyAttribute is the name of the string attribute holding the counter id.
	// Default: "id"
	KeyAttribute string

	// CountAttribute is the name of the number attribute holding the counter
	// value. Must differ from KeyAttribute for the item to be well-formed;
	// this is not validated here and a violation surfaces as ambiguous data
	// at read time.
	// Default: "lastValue"
	CountAttribute string
}

// DefaultConfig returns the conventional single-table layout.
func DefaultConfig() Config {
	return Config{
		TableName:      DefaultTableName,
		KeyAttribute:   DefaultKeyAttribute,
		CountAttribute: DefaultCountAttribute,
	}
}

// validate fills unset fields with defaults.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = DefaultTableName
	}
	if c.KeyAttribute == "" {
		c.KeyAttribute = DefaultKeyAttribute
	}
	if c.CountAttribute == "" {
		c.CountAttribute = DefaultCountAttribute
	}
}
