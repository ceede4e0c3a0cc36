// Package parcel implements the PackedOrder aggregate: the immutable
// record of an assembled order.
//
// A parcel's contents are fixed at creation time and ordered by volume
// descending (stable for ties), mimicking a physical box packed with the
// big items at the bottom. The top-down view used for display reverses
// that order; both orderings are externally observable contracts.
package parcel
