// Package materialize writes rendered content to the generated project,
// enforcing the per-role create-vs-overwrite policy.
package materialize

import "github.com/crateforge/crateforge/internal/defs"

// Policy is the creation policy attached to a file role.
type Policy int

const (
	// CreateNewOnly fails when the target path already exists. Nothing the
	// user may have placed there is ever clobbered silently.
	CreateNewOnly Policy = iota

	// OverwriteExisting truncates a file the external initializer is
	// contractually required to have created; its absence is fatal.
	OverwriteExisting
)

// FileRole identifies one file of the generated project.
type FileRole int

// The file roles, each with a fixed relative path and creation policy.
const (
	RoleEntryPoint FileRole = iota
	RoleRuntime
	RoleErrorModule
	RoleLicenseMIT
	RoleLicenseApache
	RoleReadme
	RoleManifest
)

// String returns the role's relative path for error messages and events.
func (r FileRole) String() string {
	return roles[r].relPath
}

// roleSpec pairs a role's relative path with its policy.
type roleSpec struct {
	relPath string
	policy  Policy
}

// roles is the fixed role table. cargo new creates the entry-point stub and
// the manifest; everything else must not exist yet.
var roles = map[FileRole]roleSpec{
	RoleEntryPoint:    {relPath: defs.MainRS, policy: OverwriteExisting},
	RoleRuntime:       {relPath: defs.RunRS, policy: CreateNewOnly},
	RoleErrorModule:   {relPath: defs.ErrorRS, policy: CreateNewOnly},
	RoleLicenseMIT:    {relPath: defs.LicenseMIT, policy: CreateNewOnly},
	RoleLicenseApache: {relPath: defs.LicenseApache, policy: CreateNewOnly},
	RoleReadme:        {relPath: defs.ReadmeMD, policy: CreateNewOnly},
	RoleManifest:      {relPath: defs.CargoToml, policy: OverwriteExisting},
}
