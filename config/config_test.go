package config

import (
	"testing"
)

func baseConfig() Config {
	return Config{
		SegmentTree: SegmentTreeConfig{
			InitialValues: []int64{1, 2, 3, 4, 5},
			Updates: []UpdateConfig{
				{Version: 0, Index: 2, Value: 10},
				{Version: 1, Index: 4, Value: -1},
			},
		},
	}
}

func TestValidateDefaults(t *testing.T) {
	config := baseConfig()
	if err := config.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if config.LogFile != "/var/log/segtree/segtree.log" {
		t.Errorf("log file %s is not expected", config.LogFile)
	}
	if config.LogLevel != "info" {
		t.Errorf("log level %s is not expected", config.LogLevel)
	}
}

func TestValidateLogLevel(t *testing.T) {
	config := baseConfig()
	config.LogLevel = "DEBUG"
	config.Validate()
	if config.LogLevel != "debug" {
		t.Errorf("log level %s is not expected", config.LogLevel)
	}

	config = baseConfig()
	config.LogLevel = "verbose"
	config.Validate()
	if config.LogLevel != "info" {
		t.Errorf("unknown level should fall back to info, got %s", config.LogLevel)
	}
}

func TestValidateEmptyValues(t *testing.T) {
	config := Config{}
	if err := config.Validate(); err == nil {
		t.Errorf("empty initial-values not rejected")
	}
}

func TestValidateUpdates(t *testing.T) {
	config := baseConfig()
	config.SegmentTree.Updates[0].Version = 1 // 超前引用尚未创建的版本
	if err := config.Validate(); err == nil {
		t.Errorf("forward version reference not rejected")
	}

	config = baseConfig()
	config.SegmentTree.Updates[1].Index = 5
	if err := config.Validate(); err == nil {
		t.Errorf("out of bounds index not rejected")
	}
}
