package config

import "os"

func IsDebug() bool {
	return os.Getenv("HERALD_DEBUG") == "1"
}
