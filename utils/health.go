package utils

import (
	"time"
)

var startTime = time.Now()

// HealthStatus is the payload returned by the health endpoint.
type HealthStatus struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

const Version = "1.2.0"

// Health reports process liveness and uptime.
func Health(env string) HealthStatus {
	return HealthStatus{
		Status:  "ok",
		Env:     env,
		Uptime:  time.Since(startTime).Round(time.Second).String(),
		Version: Version,
	}
}
