// Package courier models the people who deliver orders.
//
// A Courier owns a Transport value from the fixed catalog (pedestrian, bicycle, car),
// stands on a kernel.Location and is either Free or Busy. Movement happens one tick at
// a time through Move; dispatch flips the status through SetBusy and delivery returns
// it with SetFree.
package courier
