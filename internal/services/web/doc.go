// Package web serves the marketing site: the animated home page, the member
// sign in flow and the member profile.
//
// NewServer wires the content service client, the snapshot cache and the
// member provider into the module registry; routing and rendering live in the
// modules packages.
package web
