package models

const (
	OrderStatusCreated    = "created"
	OrderStatusProcessing = "processing"
	OrderStatusFoodReady  = "food ready"
	OrderStatusOnTheWay   = "on the way"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"

	OrderTypeApps    = "apps"
	OrderTypeOffline = "offline"

	IDStrategyCuid     = "cuid"
	IDStrategySequence = "sequence"

	AttributePolicyCreationOnly = "creation_only"
	AttributePolicyAllEvents    = "all_events"

	EventStreamNone    = "none"
	EventStreamConsole = "console"
	EventStreamKafka   = "kafka"
)

// CanonicalStatuses is the full lifecycle of a completed order, in emission order.
var CanonicalStatuses = []string{
	OrderStatusCreated,
	OrderStatusProcessing,
	OrderStatusFoodReady,
	OrderStatusOnTheWay,
	OrderStatusDelivered,
}
