package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RefTablesPath points to a reference tables YAML file; empty selects the
	// tables embedded in the binary.
	RefTablesPath string

	// FeeRefreshSchedule is a six-field cron spec; empty selects the job default.
	FeeRefreshSchedule string

	// FeeRefreshBatchSize caps the orders priced per refresh run; 0 means no cap.
	FeeRefreshBatchSize int

	LogLevel string
}
