package app

// ConfigChangedMsg is sent when the config file changes on disk
type ConfigChangedMsg struct{}

// SystemTickMsg triggers a refresh of the system monitor
type SystemTickMsg struct{}

