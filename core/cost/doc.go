// Package cost defines cost and performance metadata for tools. Metrics are
// attached at tool construction time and surfaced through tool descriptions
// so the calling runtime can weigh cost against accuracy and speed.
package cost
