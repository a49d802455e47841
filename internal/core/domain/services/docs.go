// Package services contains domain logic that spans the courier and order aggregates.
//
// DispatchService is the matching step of the system. Storage, transactions and retries
// are left to the application layer, which wraps each call in a unit of work.
package services
