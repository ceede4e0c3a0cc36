// Package stock implements the StockLedger aggregate: per-product FIFO
// queues of stock units plus the capacity-bounded alert log for low-stock
// conditions.
//
// The two structures mutate together and only through the aggregate:
// adding stock may resolve an existing alert, and the pack path's removals
// may raise one. The alert log holds at most a fixed number of product
// codes (default 3); once it is full, further alert attempts are refused
// and the occurrence is lost. The log never evicts and never queues
// refused alerts for later.
//
// Recoverable conditions (rejected code formats, still-low stock, refused
// alerts) are reported as Notice values rather than errors so that batch
// processing always continues; rendering the notices is an adapter concern.
package stock
