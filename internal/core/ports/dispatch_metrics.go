package ports

// DispatchOutcome labels the result of one assignment attempt.
type DispatchOutcome string

const (
	// DispatchAssigned: an order got a courier.
	DispatchAssigned        DispatchOutcome = "assigned"
	// DispatchNoOrders: no order was waiting.
	DispatchNoOrders        DispatchOutcome = "no_orders"
	// DispatchNoFreeCouriers: orders were waiting but every courier was Busy.
	DispatchNoFreeCouriers  DispatchOutcome = "no_free_couriers"
	// DispatchVersionConflict: a concurrent writer changed the courier first.
	DispatchVersionConflict DispatchOutcome = "version_conflict"
	// DispatchFailed: any other error.
	DispatchFailed          DispatchOutcome = "failed"
)

// DispatchMetrics records assignment telemetry.
type DispatchMetrics interface {
	ObserveDispatch(outcome DispatchOutcome)
	ObserveETA(transport string, ticks float64)
	ObserveDelivery()
}
