// Package jobs drives the dispatch loop on a cron schedule.
//
// Two jobs share one scheduler:
//
//   - the assignment job hands the oldest created order to the fastest free courier;
//   - the movement job advances every busy courier one tick toward its order and
//     completes the order on arrival.
//
// Schedules use the six-field cron syntax with seconds ("*/1 * * * * *"). A tick that is
// still running when the next one fires is skipped, so a slow database never piles up
// concurrent movement passes.
package jobs
