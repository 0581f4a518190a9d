// Package capability holds the generators contributing members to mixins.
//
// A Generator is bound to a marker by name. The engine invokes it once per
// declaration carrying the marker and merges the returned components by
// target.
package capability
