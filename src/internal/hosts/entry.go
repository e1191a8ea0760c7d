package hosts

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const ipv4Shape = `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`

var ipv4Regexp = regexp.MustCompile(`^` + ipv4Shape + `$`)

// Entry is one (ip, hostname) mapping of the hosts file.
type Entry struct {
	IP       string `json:"ip" validate:"required,ipv4_shape"`
	Hostname string `json:"hostname" validate:"required,host_token"`
	// Enabled is false for mappings kept as a comment line.
	Enabled bool `json:"enabled"`
}

func (e Entry) String() string {
	if e.Enabled {
		return e.IP + " " + e.Hostname
	}
	return "# " + e.IP + " " + e.Hostname
}

// Matches reports whether e maps exactly ip to hostname.
func (e Entry) Matches(ip, hostname string) bool {
	return e.IP == ip && e.Hostname == hostname
}

// IsIPv4Shaped reports whether s looks like four dot-separated decimal groups.
// Ranges are not checked.
func IsIPv4Shaped(s string) bool {
	return ipv4Regexp.MatchString(s)
}

// IsHostToken reports whether s can be written as a hostname column and read
// back unchanged: no '#' and no whitespace, Unicode spaces included.
func IsHostToken(s string) bool {
	return s != "" && !strings.ContainsFunc(s, func(r rune) bool {
		return r == '#' || unicode.IsSpace(r)
	})
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("ipv4_shape", func(fl validator.FieldLevel) bool {
		return IsIPv4Shaped(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("host_token", func(fl validator.FieldLevel) bool {
		return IsHostToken(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks the entry invariants.
func (e Entry) Validate() error {
	err := validate.Struct(e)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), validationMessage(fe)))
	}
	return fmt.Errorf("invalid entry %q: %s", e.IP+" "+e.Hostname, strings.Join(msgs, "; "))
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "ipv4_shape":
		return "must be an IPv4 address (four dot-separated decimal groups)"
	case "host_token":
		return "must be a single token without whitespace or '#'"
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}

// Contains reports whether entries hold the exact (ip, hostname) pair, enabled or not.
func Contains(entries []Entry, ip, hostname string) bool {
	for _, e := range entries {
		if e.Matches(ip, hostname) {
			return true
		}
	}
	return false
}

// SetEnabled returns a copy of entries with every matching mapping toggled.
// The second result is false when no entry matched.
func SetEnabled(entries []Entry, ip, hostname string, enabled bool) ([]Entry, bool) {
	out := make([]Entry, len(entries))
	copy(out, entries)

	found := false
	for i := range out {
		if out[i].Matches(ip, hostname) {
			out[i].Enabled = enabled
			found = true
		}
	}
	return out, found
}

// Remove returns a copy of entries without the matching mapping.
func Remove(entries []Entry, ip, hostname string) ([]Entry, bool) {
	out := make([]Entry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.Matches(ip, hostname) {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
