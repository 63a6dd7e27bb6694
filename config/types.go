package config

// StationPair names two stations for a manual transfer or a shunt link.
type StationPair struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}

// NetworkConfig holds graph construction settings.
type NetworkConfig struct {
	TransferPenalty int64         `yaml:"transferPenalty" validate:"gte=0,lte=86400"`
	ShuntWeight     int64         `yaml:"shuntWeight" validate:"gte=0,lte=86400"`
	ShuntLine       string        `yaml:"shuntLine" validate:"required"`
	ManualTransfers []StationPair `yaml:"manualTransfers" validate:"dive"`
	Shunts          []StationPair `yaml:"shunts" validate:"dive"`
}

// RoutingConfig holds query settings.
type RoutingConfig struct {
	DefaultK      int      `yaml:"defaultK" validate:"gte=1"`
	MaxK          int      `yaml:"maxK" validate:"gtefield=DefaultK"`
	MaxExpansions int      `yaml:"maxExpansions" validate:"gte=1"`
	MaxHops       int      `yaml:"maxHops" validate:"gte=0"`
	Parallelism   int      `yaml:"parallelism" validate:"gte=0"` // 0 = GOMAXPROCS
	TimeoutMS     int      `yaml:"timeoutMS" validate:"gte=0"`   // 0 = no deadline
	Avoid         []string `yaml:"avoid" validate:"dive,oneof=line transfer shunt"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
}

// DataConfig points at the network dataset.
type DataConfig struct {
	Path string `yaml:"path"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Network NetworkConfig `yaml:"network"`
	Routing RoutingConfig `yaml:"routing"`
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
}
