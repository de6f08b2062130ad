package types

// Config holds the parameters for opening a Store. There are no implicit
// defaults: the caller always names the database file.
type Config struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DBPath == "" {
		return ErrDBPathEmpty
	}
	return nil
}
