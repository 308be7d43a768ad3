package models

import "testing"

func TestArgParserValid(t *testing.T) {
	for _, p := range []ArgParser{ParserClap, ParserDocopt} {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	for _, p := range []ArgParser{"", "structopt", "Clap"} {
		if p.Valid() {
			t.Errorf("%q should be invalid", p)
		}
	}
}

func TestLicenseValid(t *testing.T) {
	for _, l := range []License{LicenseBoth, LicenseMIT, LicenseApache, LicenseNone} {
		if !l.Valid() {
			t.Errorf("%q should be valid", l)
		}
	}
	for _, l := range []License{"", "gpl", "MIT"} {
		if l.Valid() {
			t.Errorf("%q should be invalid", l)
		}
	}
}

func TestLicenseIncludes(t *testing.T) {
	tests := []struct {
		license    License
		mit, apache bool
	}{
		{LicenseBoth, true, true},
		{LicenseMIT, true, false},
		{LicenseApache, false, true},
		{LicenseNone, false, false},
	}
	for _, tt := range tests {
		if got := tt.license.IncludesMIT(); got != tt.mit {
			t.Errorf("%q IncludesMIT = %v, want %v", tt.license, got, tt.mit)
		}
		if got := tt.license.IncludesApache(); got != tt.apache {
			t.Errorf("%q IncludesApache = %v, want %v", tt.license, got, tt.apache)
		}
	}
}
