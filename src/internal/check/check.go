// Package check inspects the hosts file and reports problems without changing it.
package check

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/miekg/dns"

	"github.com/hostsctl/hostsctl/src/internal/hosts"
)

type Severity string

const (
	SeverityOK    Severity = "ok"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Finding is one result of the self-check.
type Finding struct {
	Check    string       `json:"check"`
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
	Entry    *hosts.Entry `json:"entry,omitempty"`
}

// Report summarizes the state of a hosts file.
type Report struct {
	HostsPath string    `json:"hosts_path"`
	Exists    bool      `json:"exists"`
	Writable  bool      `json:"writable"`
	Enabled   int       `json:"enabled"`
	Disabled  int       `json:"disabled"`
	Skipped   int       `json:"skipped"`
	Findings  []Finding `json:"findings"`
}

// OK reports whether no check failed with an error.
func (r *Report) OK() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

func (r *Report) add(check string, severity Severity, entry *hosts.Entry, format string, args ...interface{}) {
	r.Findings = append(r.Findings, Finding{
		Check:    check,
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
		Entry:    entry,
	})
}

// Run checks the hosts file at path.
func Run(path string) *Report {
	r := &Report{HostsPath: path, Findings: []Finding{}}

	content, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		r.add("exists", SeverityError, nil, "hosts file %s does not exist", path)
		return r
	case err != nil:
		r.Exists = true
		r.add("readable", SeverityError, nil, "hosts file %s cannot be read: %v", path, err)
		return r
	}
	r.Exists = true
	r.add("exists", SeverityOK, nil, "hosts file %s exists", path)

	if err := writable(path); err != nil {
		r.add("writable", SeverityWarn, nil, "hosts file is not writable, run with elevated privileges to edit it: %v", err)
	} else {
		r.Writable = true
		r.add("writable", SeverityOK, nil, "hosts file is writable")
	}

	result := hosts.Parse(string(content))
	r.Skipped = len(result.Skipped)
	checkEntries(r, result.Entries)

	return r
}

func checkEntries(r *Report, entries []hosts.Entry) {
	seen := make(map[hosts.Entry]bool)
	folded := make(map[string]string)
	ipsByHost := make(map[string][]string)

	for i := range entries {
		e := entries[i]
		if e.Enabled {
			r.Enabled++
		} else {
			r.Disabled++
		}

		if _, ok := dns.IsDomainName(e.Hostname); !ok {
			r.add("hostname", SeverityWarn, &e, "%q is not a valid DNS name", e.Hostname)
		}

		if !e.Enabled {
			continue
		}

		if seen[e] {
			r.add("duplicate", SeverityWarn, &e, "mapping %s is listed more than once", e)
			continue
		}
		seen[e] = true

		key := e.IP + " " + strings.ToLower(e.Hostname)
		if prev, ok := folded[key]; ok && prev != e.Hostname {
			r.add("case", SeverityWarn, &e, "%s maps %q and %q, which resolve identically", e.IP, prev, e.Hostname)
		} else if !ok {
			folded[key] = e.Hostname
		}

		lower := strings.ToLower(e.Hostname)
		if ips := ipsByHost[lower]; len(ips) > 0 && !contains(ips, e.IP) {
			r.add("conflict", SeverityWarn, &e, "%s is also mapped to %s", e.Hostname, strings.Join(ips, ", "))
		}
		ipsByHost[lower] = append(ipsByHost[lower], e.IP)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
