package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/op/go-logging"
	"gopkg.in/yaml.v2"
)

var log = logging.MustGetLogger("config")

type Config struct {
	LogFile      string            `yaml:"log-file"`
	LogLevel     string            `yaml:"log-level"`
	StatsdServer string            `yaml:"statsd-server"`
	Profiler     bool              `yaml:"profiler"`
	SegmentTree  SegmentTreeConfig `yaml:"segment-tree"`
}

type SegmentTreeConfig struct {
	InitialValues []int64        `yaml:"initial-values,flow"`
	Updates       []UpdateConfig `yaml:"updates"`
}

type UpdateConfig struct {
	Version int   `yaml:"version"`
	Index   int   `yaml:"index"`
	Value   int64 `yaml:"value"`
}

func (c *Config) Validate() error {
	if c.LogFile == "" {
		c.LogFile = "/var/log/segtree/segtree.log"
	}
	level := strings.ToLower(c.LogLevel)
	c.LogLevel = "info"
	for _, l := range []string{"error", "warning", "info", "debug"} {
		if level == l {
			c.LogLevel = l
		}
	}

	if len(c.SegmentTree.InitialValues) == 0 {
		return errors.New("segment-tree initial-values is empty")
	}
	// 第i条update执行前已有版本0..i，基版本号不能超前引用
	for i, update := range c.SegmentTree.Updates {
		if update.Version < 0 || update.Version > i {
			return fmt.Errorf("segment-tree update %d references version %d not yet created", i, update.Version)
		}
		if update.Index < 0 || update.Index >= len(c.SegmentTree.InitialValues) {
			return fmt.Errorf("segment-tree update %d index %d out of bounds", i, update.Index)
		}
	}
	return nil
}

func Load(path string) Config {
	configBytes, err := ioutil.ReadFile(path)
	if err != nil {
		log.Error("Read config file error:", err)
		os.Exit(1)
	}
	config := Config{}
	if err = yaml.Unmarshal(configBytes, &config); err != nil {
		log.Error("Unmarshal yaml error:", err)
		os.Exit(1)
	}

	if err = config.Validate(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
	return config
}
