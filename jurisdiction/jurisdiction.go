// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package jurisdiction

import (
	"regexp"
	"sort"
	"strings"
)

// NationalKey is the storage key for the national flag order.
const NationalKey = "US"

// State pairs a two-letter code with its display name.
type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// States lists the 50 states plus the federal district in display order
// for the all-states view.
var States = []State{
	{"AL", "ALABAMA"}, {"AK", "ALASKA"}, {"AZ", "ARIZONA"}, {"AR", "ARKANSAS"},
	{"CA", "CALIFORNIA"}, {"CO", "COLORADO"}, {"CT", "CONNECTICUT"}, {"DE", "DELAWARE"},
	{"DC", "DISTRICT OF COLUMBIA"},
	{"FL", "FLORIDA"}, {"GA", "GEORGIA"}, {"HI", "HAWAII"}, {"ID", "IDAHO"},
	{"IL", "ILLINOIS"}, {"IN", "INDIANA"}, {"IA", "IOWA"}, {"KS", "KANSAS"},
	{"KY", "KENTUCKY"}, {"LA", "LOUISIANA"}, {"ME", "MAINE"}, {"MD", "MARYLAND"},
	{"MA", "MASSACHUSETTS"}, {"MI", "MICHIGAN"}, {"MN", "MINNESOTA"}, {"MS", "MISSISSIPPI"},
	{"MO", "MISSOURI"}, {"MT", "MONTANA"}, {"NE", "NEBRASKA"}, {"NV", "NEVADA"},
	{"NH", "NEW HAMPSHIRE"}, {"NJ", "NEW JERSEY"}, {"NM", "NEW MEXICO"}, {"NY", "NEW YORK"},
	{"NC", "NORTH CAROLINA"}, {"ND", "NORTH DAKOTA"}, {"OH", "OHIO"}, {"OK", "OKLAHOMA"},
	{"OR", "OREGON"}, {"PA", "PENNSYLVANIA"}, {"RI", "RHODE ISLAND"}, {"SC", "SOUTH CAROLINA"},
	{"SD", "SOUTH DAKOTA"}, {"TN", "TENNESSEE"}, {"TX", "TEXAS"}, {"UT", "UTAH"},
	{"VT", "VERMONT"}, {"VA", "VIRGINIA"}, {"WA", "WASHINGTON"}, {"WV", "WEST VIRGINIA"},
	{"WI", "WISCONSIN"}, {"WY", "WYOMING"},
}

// aliases maps additional subject-line spellings to codes.
var aliases = map[string]string{
	"HAWAI'I":       "HI",
	"WASHINGTON DC": "DC",
}

// nationalPhrases mark an order as applying to all U.S. flags. Checked
// before any state match so a subject like "nationwide ... for Virginia
// officer" stays national.
var nationalPhrases = []string{
	"UNITED STATES",
	"NATIONWIDE",
	"ALL U.S.",
	"US FLAGS",
	"U.S. FLAGS",
	"U.S. FLAG",
	"U. S. FLAG",
}

var (
	// Name matches are tried longest-first so WEST VIRGINIA wins over VIRGINIA.
	namesByLength []State
	validCodes    map[string]bool
	codePattern   *regexp.Regexp
)

func init() {
	validCodes = make(map[string]bool, len(States)+1)
	codes := make([]string, 0, len(States)+1)
	for _, s := range States {
		namesByLength = append(namesByLength, s)
		validCodes[s.Code] = true
		codes = append(codes, s.Code)
	}
	for name, code := range aliases {
		namesByLength = append(namesByLength, State{Code: code, Name: name})
		if !validCodes[code] {
			validCodes[code] = true
			codes = append(codes, code)
		}
	}
	sort.SliceStable(namesByLength, func(i, j int) bool {
		return len(namesByLength[i].Name) > len(namesByLength[j].Name)
	})
	sort.Strings(codes)
	codePattern = regexp.MustCompile(`\b(` + strings.Join(codes, "|") + `)\b`)
}

// Scope identifies which flag an inbound order applies to.
type Scope struct {
	National bool
	State    string // two-letter code when not national
}

// Recognized reports whether the scope maps to a tracked jurisdiction.
func (s Scope) Recognized() bool {
	return s.National || s.State != ""
}

// Key returns the storage key for the scope's jurisdiction.
func (s Scope) Key() string {
	if s.National {
		return NationalKey
	}
	return s.State
}

// DetectScope scans a subject line for a jurisdiction. National phrases take
// precedence, then full state names (case-insensitive), then standalone
// two-letter codes. Codes must appear uppercase in the raw subject so that
// ordinary words like "in" and "or" are not read as Indiana or Oregon.
func DetectScope(subject string) Scope {
	if subject == "" {
		return Scope{}
	}

	upper := strings.ToUpper(subject)
	for _, phrase := range nationalPhrases {
		if strings.Contains(upper, phrase) {
			return Scope{National: true}
		}
	}

	for _, s := range namesByLength {
		if strings.Contains(upper, s.Name) {
			return Scope{State: s.Code}
		}
	}

	if code := codePattern.FindString(subject); code != "" {
		return Scope{State: code}
	}

	return Scope{}
}

// Valid reports whether code is a tracked state/territory code.
func Valid(code string) bool {
	return validCodes[code]
}
