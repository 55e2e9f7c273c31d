package domain

import "time"

type DatabaseStatus struct {
	Version           string `json:"version"`
	MaxConnections    int32  `json:"max_connections"`
	OpenedConnections int32  `json:"opened_connections"`
}

type SystemStatus struct {
	UpdatedAt    time.Time `json:"updated_at"`
	Dependencies struct {
		Database DatabaseStatus `json:"database"`
	} `json:"dependencies"`
}
