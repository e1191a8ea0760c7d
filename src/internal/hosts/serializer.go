package hosts

import (
	"strings"

	"github.com/valyala/fasttemplate"
)

// DefaultAppName is the application named in the banner when none is configured.
const DefaultAppName = "hostsctl"

const bannerTemplate = "# Hosts file managed by {{app_name}}\n# Generated automatically\n"

var (
	bannerTmpl        = fasttemplate.New(bannerTemplate, "{{", "}}")
	bannerSanitizer   = strings.NewReplacer("\r", " ", "\n", " ")
	defaultBannerText = RenderBanner(DefaultAppName)
)

// RenderBanner returns the two-line comment header naming appName.
func RenderBanner(appName string) string {
	if appName == "" {
		appName = DefaultAppName
	}
	return bannerTmpl.ExecuteString(map[string]interface{}{
		"app_name": bannerSanitizer.Replace(appName),
	})
}

// DefaultBanner returns the banner rendered with DefaultAppName.
func DefaultBanner() string {
	return defaultBannerText
}

// Serialize renders a full hosts file: banner, blank line, then one line per
// entry in the given order. Lines keep a trailing space after the hostname.
func Serialize(entries []Entry, banner string) string {
	var sb strings.Builder
	writeBanner(&sb, banner)

	for _, e := range entries {
		if !e.Enabled {
			sb.WriteString("# ")
		}
		sb.WriteString(e.IP)
		sb.WriteByte(' ')
		sb.WriteString(e.Hostname)
		sb.WriteString(" \n")
	}

	return sb.String()
}

// SerializeIncremental renders entries for appending to an existing file.
// Enabled entries sharing an ip are joined on one line, lines ordered by
// first appearance of the ip. The banner is emitted only when initialize is true.
func SerializeIncremental(entries []Entry, banner string, initialize bool) string {
	var sb strings.Builder
	if initialize {
		writeBanner(&sb, banner)
	}

	for _, g := range groupByIP(entries) {
		if g.enabled {
			sb.WriteString(g.ip + " " + strings.Join(g.hostnames, " ") + "\n")
			continue
		}
		// A disabled line holds exactly one mapping, otherwise it reads back as a comment.
		for _, hostname := range g.hostnames {
			sb.WriteString("# " + g.ip + " " + hostname + "\n")
		}
	}

	return sb.String()
}

func writeBanner(sb *strings.Builder, banner string) {
	sb.WriteString(banner)
	if banner != "" && !strings.HasSuffix(banner, "\n") {
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
}

type ipGroup struct {
	ip        string
	enabled   bool
	hostnames []string
}

type groupKey struct {
	ip      string
	enabled bool
}

func groupByIP(entries []Entry) []*ipGroup {
	var groups []*ipGroup
	index := make(map[groupKey]*ipGroup)

	for _, e := range entries {
		key := groupKey{ip: e.IP, enabled: e.Enabled}
		g, ok := index[key]
		if !ok {
			g = &ipGroup{ip: e.IP, enabled: e.Enabled}
			index[key] = g
			groups = append(groups, g)
		}
		g.hostnames = append(g.hostnames, e.Hostname)
	}

	return groups
}
