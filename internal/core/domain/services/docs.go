// Package services contains domain services: operations that coordinate
// multiple aggregates and fit none of them alone.
//
// Packer is the only service: it pulls units from the stock ledger to
// assemble a packed parcel, which touches the ledger, the alert log, and
// the parcel aggregate in one workflow.
package services
