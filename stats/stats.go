package stats

import (
	"errors"
	"os"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/op/go-logging"
	"gopkg.in/alexcesaro/statsd.v2"
)

var log = logging.MustGetLogger("stats")

type source struct {
	module    string
	countable Countable
	tags      OptionStatTags
	interval  time.Duration
	elapsed   time.Duration
}

var (
	lock     sync.Mutex
	sources  []*source
	client   *statsd.Client
	hostname string
	running  bool
)

func init() {
	hostname, _ = os.Hostname()
}

func setHostname(name string) {
	lock.Lock()
	hostname = name
	lock.Unlock()
}

func setRemote(addr string) error {
	c, err := statsd.New(
		statsd.Address(addr),
		statsd.Prefix(hostname),
		statsd.TagsFormat(statsd.InfluxDB),
	)
	if err != nil {
		return err
	}
	lock.Lock()
	if client != nil {
		client.Close()
	}
	client = c
	if !running {
		running = true
		go run()
	}
	lock.Unlock()
	return nil
}

func registerCountable(module string, countable Countable, opts ...StatsOption) error {
	src := &source{module: module, countable: countable, interval: MinInterval}
	for _, opt := range opts {
		switch v := opt.(type) {
		case OptionStatTags:
			src.tags = v
		case OptionInterval:
			if time.Duration(v) > MinInterval {
				src.interval = time.Duration(v)
			}
		default:
			return errors.New("unknown stats option")
		}
	}
	lock.Lock()
	sources = append(sources, src)
	lock.Unlock()
	return nil
}

func deregisterCountable(countable Countable) {
	lock.Lock()
	for i, src := range sources {
		if src.countable == countable {
			sources = append(sources[:i], sources[i+1:]...)
			break
		}
	}
	lock.Unlock()
}

func run() {
	for range time.Tick(MinInterval) {
		lock.Lock()
		c := client
		due := make([]*source, 0, len(sources))
		for _, src := range sources {
			src.elapsed += MinInterval
			if src.elapsed >= src.interval {
				src.elapsed = 0
				due = append(due, src)
			}
		}
		lock.Unlock()
		if c == nil {
			continue
		}
		for _, src := range due {
			flush(c, src)
		}
	}
}

func flush(c *statsd.Client, src *source) {
	counter := src.countable.GetCounter()
	if len(src.tags) > 0 {
		keys := make([]string, 0, len(src.tags))
		for key := range src.tags {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		tags := make([]string, 0, len(src.tags)*2)
		for _, key := range keys {
			tags = append(tags, key, src.tags[key])
		}
		c = c.Clone(statsd.Tags(tags...))
	}
	value := reflect.Indirect(reflect.ValueOf(counter))
	if value.Kind() != reflect.Struct {
		log.Warningf("counter of %s is not a struct", src.module)
		return
	}
	for i := 0; i < value.NumField(); i++ {
		name, ok := value.Type().Field(i).Tag.Lookup("statsd")
		if !ok {
			continue
		}
		field := value.Field(i)
		switch field.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			c.Count(src.module+"."+name, field.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			c.Count(src.module+"."+name, int64(field.Uint()))
		case reflect.Float32, reflect.Float64:
			c.Gauge(src.module+"."+name, field.Float())
		}
	}
}
