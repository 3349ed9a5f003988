package model

type BridgeConfig struct {
	Address string `json:"address" mapstructure:"address"`
	Token   string `json:"token" mapstructure:"token"`
}

type LogConfig struct {
	Level string `json:"level" mapstructure:"level"`
	JSON  bool   `json:"json" mapstructure:"json"`
	File  string `json:"file" mapstructure:"file"`
}

// Config is built once at startup and never mutated afterwards.
type Config struct {
	Bridge    BridgeConfig `json:"bridge"`
	Whitelist []string     `json:"whitelist"`
	Lights    []int        `json:"lights"` // Ordered, commands are issued in this order
	Listen    string       `json:"listen"`
	Log       LogConfig    `json:"log"`
}
