package cmd

// Config carries the runtime settings read from the environment.
type Config struct {
	HTTPPort          string
	Mode              string
	SeedBatch         string
	LowStockThreshold int
	AlertLogCapacity  int
}
