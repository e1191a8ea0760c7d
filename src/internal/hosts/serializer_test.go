package hosts

import (
	"fmt"
	"testing"
)

func entrySet(entries []Entry) map[Entry]int {
	set := make(map[Entry]int, len(entries))
	for _, e := range entries {
		set[e]++
	}
	return set
}

func assertSameSet(t *testing.T, expected, got []Entry) {
	t.Helper()
	want, have := entrySet(expected), entrySet(got)
	if len(want) != len(have) {
		t.Fatalf("Expected %d distinct entries, got %d: %+v", len(want), len(have), got)
	}
	for e, n := range want {
		if have[e] != n {
			t.Errorf("Expected entry %+v %d time(s), got %d", e, n, have[e])
		}
	}
}

func TestRenderBanner(t *testing.T) {
	tests := []struct {
		name    string
		appName string
		want    string
	}{
		{"default", "", "# Hosts file managed by hostsctl\n# Generated automatically\n"},
		{"custom", "Hosts Editor", "# Hosts file managed by Hosts Editor\n# Generated automatically\n"},
		{"newline is flattened", "evil\n127.0.0.1 x", "# Hosts file managed by evil 127.0.0.1 x\n# Generated automatically\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderBanner(tt.appName); got != tt.want {
				t.Errorf("RenderBanner(%q) = %q, want %q", tt.appName, got, tt.want)
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	entries := []Entry{
		{IP: "10.0.0.2", Hostname: "b.local", Enabled: true},
		{IP: "10.0.0.1", Hostname: "a.local", Enabled: false},
		{IP: "10.0.0.2", Hostname: "c.local", Enabled: true},
	}

	got := Serialize(entries, DefaultBanner())

	want := "# Hosts file managed by hostsctl\n" +
		"# Generated automatically\n" +
		"\n" +
		"10.0.0.2 b.local \n" +
		"# 10.0.0.1 a.local \n" +
		"10.0.0.2 c.local \n"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerialize_EmptyHasNoMappings(t *testing.T) {
	text := Serialize(nil, DefaultBanner())
	if entries := ParseEntries(text); len(entries) != 0 {
		t.Errorf("Expected banner to contain no mappings, got %+v", entries)
	}
}

func TestSerializeIncremental(t *testing.T) {
	entries := []Entry{
		{IP: "10.0.0.2", Hostname: "b.local", Enabled: true},
		{IP: "10.0.0.1", Hostname: "a.local", Enabled: true},
		{IP: "10.0.0.2", Hostname: "c.local", Enabled: true},
		{IP: "10.0.0.9", Hostname: "x.local", Enabled: false},
		{IP: "10.0.0.9", Hostname: "y.local", Enabled: false},
	}

	t.Run("append", func(t *testing.T) {
		got := SerializeIncremental(entries, DefaultBanner(), false)
		want := "10.0.0.2 b.local c.local\n" +
			"10.0.0.1 a.local\n" +
			"# 10.0.0.9 x.local\n" +
			"# 10.0.0.9 y.local\n"
		if got != want {
			t.Errorf("SerializeIncremental() = %q, want %q", got, want)
		}
	})

	t.Run("initialize", func(t *testing.T) {
		got := SerializeIncremental(entries[:1], RenderBanner("app"), true)
		want := "# Hosts file managed by app\n# Generated automatically\n\n10.0.0.2 b.local\n"
		if got != want {
			t.Errorf("SerializeIncremental() = %q, want %q", got, want)
		}
	})

	t.Run("reads back", func(t *testing.T) {
		assertSameSet(t, entries, ParseEntries(SerializeIncremental(entries, DefaultBanner(), true)))
	})
}

func TestRoundTrip(t *testing.T) {
	var entries []Entry
	for i := 0; i < 20; i++ {
		entries = append(entries, Entry{
			IP:       fmt.Sprintf("10.0.%d.%d", i%3, i%5),
			Hostname: fmt.Sprintf("host-%d.local", i),
			Enabled:  i%4 != 0,
		})
	}

	assertSameSet(t, entries, ParseEntries(Serialize(entries, DefaultBanner())))

	// A second pass through both serializers keeps the same set.
	again := ParseEntries(SerializeIncremental(ParseEntries(Serialize(entries, DefaultBanner())), DefaultBanner(), true))
	assertSameSet(t, entries, again)
}

func TestRoundTrip_OnlyValidHostnamesSurvive(t *testing.T) {
	hostnames := []string{"plain.local", "bücher.local", "a#b", "a\u00a0b", "a\u2003b", "#lead"}

	var valid []Entry
	for _, h := range hostnames {
		for _, enabled := range []bool{true, false} {
			e := Entry{IP: "1.2.3.4", Hostname: h, Enabled: enabled}
			if e.Validate() != nil {
				continue
			}
			valid = append(valid, e)
		}
	}
	if len(valid) != 4 {
		t.Fatalf("Expected 4 valid entries, got %+v", valid)
	}

	// Every entry that passes validation reads back unchanged, in both modes.
	for _, e := range valid {
		assertSameSet(t, []Entry{e}, ParseEntries(Serialize([]Entry{e}, DefaultBanner())))
		assertSameSet(t, []Entry{e}, ParseEntries(SerializeIncremental([]Entry{e}, DefaultBanner(), true)))
	}
}
