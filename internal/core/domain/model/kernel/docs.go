// Package kernel contains the shared value objects of the warehouse domain:
// UUID identities and product codes.
//
// A product code is a short identifier such as "A3" or "B12": at least two
// characters, first character alphabetic, always stored uppercase. The
// characters after the first are read as an unsigned decimal volume; a code
// whose suffix does not parse (e.g. "AB") has volume 0. The suffix is a
// coarse volume attribute, not geometry.
package kernel
