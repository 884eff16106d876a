package cmd

import "time"

// Config carries every runtime setting the service reads at startup.
// DraftRetention bounds how long an unsubmitted draft may stay idle before
// the cleanup job removes it.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DraftRetention time.Duration
}
