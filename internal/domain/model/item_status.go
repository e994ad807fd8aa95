package model

// ItemStatus is the fulfillment stage of a purchased line item.
type ItemStatus string

const (
	ItemStatusAwaitingIntake           ItemStatus = "awaiting_intake"
	ItemStatusMeasurementAnalysis      ItemStatus = "measurement_analysis"
	ItemStatusPrototypeInProgress      ItemStatus = "prototype_in_progress"
	ItemStatusCustomerFitting          ItemStatus = "customer_fitting"
	ItemStatusFinalFinishing           ItemStatus = "final_finishing"
	ItemStatusReadyForPickupOrShipping ItemStatus = "ready_for_pickup_or_shipping"
	ItemStatusDelivered                ItemStatus = "delivered"
)

// StatusEntry pairs a status key with its display label.
type StatusEntry struct {
	Key   ItemStatus
	Label string
}

var itemStatusCatalog = []StatusEntry{
	{ItemStatusAwaitingIntake, "Awaiting intake"},
	{ItemStatusMeasurementAnalysis, "Foot measurement analysis"},
	{ItemStatusPrototypeInProgress, "Prototype in progress"},
	{ItemStatusCustomerFitting, "Customer fitting"},
	{ItemStatusFinalFinishing, "Final finishing"},
	{ItemStatusReadyForPickupOrShipping, "Ready for pickup/shipping"},
	{ItemStatusDelivered, "Delivered"},
}

// ItemStatusCatalog returns the workflow stages in order.
func ItemStatusCatalog() []StatusEntry {
	out := make([]StatusEntry, len(itemStatusCatalog))
	copy(out, itemStatusCatalog)
	return out
}

// Known reports whether s is one of the catalog keys.
func (s ItemStatus) Known() bool {
	for _, e := range itemStatusCatalog {
		if e.Key == s {
			return true
		}
	}
	return false
}

// OrDefault maps unknown or empty values to awaiting_intake.
func (s ItemStatus) OrDefault() ItemStatus {
	if s.Known() {
		return s
	}
	return ItemStatusAwaitingIntake
}

// Label returns the display label, falling back to the awaiting_intake label.
func (s ItemStatus) Label() string {
	key := s.OrDefault()
	for _, e := range itemStatusCatalog {
		if e.Key == key {
			return e.Label
		}
	}
	return itemStatusCatalog[0].Label
}
