package template

import (
	"fmt"

	"github.com/crateforge/crateforge/pkg/models"
)

// Embedded asset names for license material.
const (
	assetHeaderBoth   = "license/header-both.rs.tmpl"
	assetHeaderMIT    = "license/header-mit.rs.tmpl"
	assetHeaderApache = "license/header-apache.rs.tmpl"
	assetBodyMIT      = "license/LICENSE-MIT.tmpl"
	assetBodyApache   = "license/LICENSE-APACHE.tmpl"
)

// Manifest license identifiers written into Cargo.toml.
const (
	manifestLicenseBoth   = "MIT/Apache-2.0"
	manifestLicenseMIT    = "MIT"
	manifestLicenseApache = "Apache-2.0"
)

// LicenseAssets describes the license material for one license choice.
// Optional fields are nil when the choice does not carry them; consumers
// must skip the corresponding writes rather than emit empty files.
type LicenseAssets struct {
	// Header names the source-header fragment template prefixed onto
	// generated .rs files. Empty exactly when both bodies are absent.
	Header string

	// MITBody and ApacheBody name the license-file templates, nil when the
	// choice does not include that license.
	MITBody    *string
	ApacheBody *string

	// ManifestLicense is the value for package.license in Cargo.toml, nil
	// when the choice is none (the field is left untouched).
	ManifestLicense *string
}

// HasLicense reports whether any license file will be generated.
func (a LicenseAssets) HasLicense() bool {
	return a.MITBody != nil || a.ApacheBody != nil
}

func strRef(s string) *string { return &s }

// kit maps each license choice to its assets. Selection is a total, pure
// lookup over the closed enumeration.
var kit = map[models.License]LicenseAssets{
	models.LicenseBoth: {
		Header:          assetHeaderBoth,
		MITBody:         strRef(assetBodyMIT),
		ApacheBody:      strRef(assetBodyApache),
		ManifestLicense: strRef(manifestLicenseBoth),
	},
	models.LicenseMIT: {
		Header:          assetHeaderMIT,
		MITBody:         strRef(assetBodyMIT),
		ManifestLicense: strRef(manifestLicenseMIT),
	},
	models.LicenseApache: {
		Header:          assetHeaderApache,
		ApacheBody:      strRef(assetBodyApache),
		ManifestLicense: strRef(manifestLicenseApache),
	},
	models.LicenseNone: {},
}

// SelectLicense returns the license assets for the given choice.
func SelectLicense(choice models.License) (LicenseAssets, error) {
	assets, ok := kit[choice]
	if !ok {
		return LicenseAssets{}, fmt.Errorf("%w: %q", ErrUnknownLicense, choice)
	}
	return assets, nil
}
