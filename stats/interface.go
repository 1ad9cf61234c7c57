package stats

import (
	"time"
)

var (
	MinInterval = time.Second
)

type StatsOption = interface{}

type OptionStatTags map[string]string
type OptionInterval time.Duration

type Countable interface {
	// needs to be thread-safe, clear is required after read
	GetCounter() interface{}
}

// 限定stats的最少interval，注册Countable时指定的Interval低于此值时以此值为准
func SetMinInterval(interval time.Duration) {
	MinInterval = interval
}

// 指定statsd服务器地址，首次调用时启动推送协程
func SetRemote(addr string) error {
	return setRemote(addr)
}

func SetHostname(name string) {
	setHostname(name)
}

func RegisterCountable(module string, countable Countable, opts ...StatsOption) error {
	return registerCountable(module, countable, opts...)
}

func DeregisterCountable(countable Countable) {
	deregisterCountable(countable)
}
