package client

import "strings"

// Endpoints derives the per-resource URLs from one API root.  Resource URLs
// end in a trailing slash because Resource concatenates ids path-style.
type Endpoints struct {
	base string
}

// NewEndpoints builds an Endpoints for the given API root, e.g.
// "https://parks.example.com".
func NewEndpoints(base string) Endpoints {
	return Endpoints{base: strings.TrimRight(base, "/")}
}

// NationalParks returns the park resource URL.
func (e Endpoints) NationalParks() string { return e.base + "/api/v1/nationalparks/" }

// Trails returns the trail resource URL.
func (e Endpoints) Trails() string { return e.base + "/api/v1/trails/" }

// Authenticate returns the login endpoint URL.
func (e Endpoints) Authenticate() string { return e.base + "/api/v1/users/authenticate" }

// Register returns the registration endpoint URL.
func (e Endpoints) Register() string { return e.base + "/api/v1/users/register" }
