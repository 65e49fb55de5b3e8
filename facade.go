package nicebot

import (
	"net/url"
	"strings"

	"github.com/alexanderjkslfj/nicebot/pkg/urlutil"
)

// Facade dispatches path checks across many hosts, each backed by its own
// Engine. It is the entry point for crawlers that hold a single set of
// robots.txt policies fetched from many sites.
type Facade struct {
	hosts         map[string]*Engine
	agentKey      string
	decodePercent bool
	opts          []EngineOption
}

// NewFacade creates an empty multi-host facade. agentKey and
// decodePercent are forwarded to every Engine created on demand as hosts
// are added.
func NewFacade(agentKey string, decodePercent bool, opts ...EngineOption) *Facade {
	return &Facade{
		hosts:         make(map[string]*Engine),
		agentKey:      agentKey,
		decodePercent: decodePercent,
		opts:          opts,
	}
}

// AddRobots parses text as a robots.txt body and merges its rules into
// the engine for host, creating that engine if this is its first sighting.
// host is lowercased and otherwise taken verbatim as the dispatch key
// (no port or scheme is stripped); callers that have a URL
// rather than a bare host should go through TryAddRobots or normalize the
// host themselves first.
func (f *Facade) AddRobots(host, text string) {
	f.engineFor(host).Add(text)
}

// TryAddRobots parses rawHost as a URL host and, on success, behaves like
// AddRobots. It reports false without modifying f if rawHost cannot be
// parsed as a host.
func (f *Facade) TryAddRobots(rawHost, text string) bool {
	host, ok := urlutil.ParseHost(rawHost)
	if !ok {
		return false
	}
	f.engineFor(host).Add(text)
	return true
}

func (f *Facade) engineFor(host string) *Engine {
	host = strings.ToLower(host)
	e, ok := f.hosts[host]
	if !ok {
		e = NewEngine(f.agentKey, f.decodePercent, f.opts...)
		f.hosts[host] = e
	}
	return e
}

// Check parses rawURL, looks up the engine for its host, and returns the
// permission for its path. A URL with no matching engine yields
// Unspecified, not an error: an unknown host is a silent crawl-everywhere
// policy, the same default an engine with no rules applies. An empty
// path is treated as "/", matching how servers interpret a bare host URL.
//
// Check returns *ParseError if rawURL cannot be parsed, and *MissingHost
// if it parses but carries no host component.
func (f *Facade) Check(rawURL string) (Permission, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Unspecified, &ParseError{Input: rawURL, Cause: err}
	}
	if u.Host == "" {
		return Unspecified, &MissingHost{Input: rawURL}
	}

	e, ok := f.hosts[urlutil.Host(u)]
	if !ok {
		return Unspecified, nil
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return e.Check(path), nil
}

// Trim shrinks every host's engine. Call it once after a batch of
// AddRobots/TryAddRobots calls, not between each one.
func (f *Facade) Trim() {
	for _, e := range f.hosts {
		e.Trim()
	}
}

// Hosts returns the set of hosts with a registered engine, in no
// particular order.
func (f *Facade) Hosts() []string {
	hosts := make([]string, 0, len(f.hosts))
	for host := range f.hosts {
		hosts = append(hosts, host)
	}
	return hosts
}
