package api

import (
	"github.com/hostsctl/hostsctl/src/internal/backup"
	"github.com/hostsctl/hostsctl/src/internal/hosts"
)

// DataResponse wraps successful responses with a "data" field.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// HostsResponse returns the entries of the hosts file.
type HostsResponse struct {
	Path    string        `json:"path"`
	Entries []hosts.Entry `json:"entries"`
}

// AddHostRequest adds one enabled mapping.
type AddHostRequest struct {
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
}

// SaveHostsRequest replaces every entry of the hosts file.
type SaveHostsRequest struct {
	Entries []hosts.Entry `json:"entries"`
}

// BackupResponse returns the path of a created backup.
type BackupResponse struct {
	Path string `json:"path"`
}

// BackupsResponse lists the available backups, newest first.
type BackupsResponse struct {
	Backups []backup.Info `json:"backups"`
}

// RestoreResponse returns the safety backup taken before a restore.
type RestoreResponse struct {
	SafetyBackup string `json:"safety_backup,omitempty"`
}

// HealthResponse reports liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
