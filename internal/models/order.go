package models

import "time"

// Order carries the attributes fixed when an order is created. They never
// change over the order's lifecycle.
type Order struct {
	ID        string
	Outlet    Outlet
	MenuItem  string
	OrderType string
	Canceled  bool
}

// OrderEvent is one lifecycle transition of an order. The descriptive columns
// are optional: under the creation-only attribute policy they are nil on every
// row after "created", which is the explicit missing marker in the parquet
// output.
type OrderEvent struct {
	OrderID    string  `json:"order_id" parquet:"name=order_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	OutletName *string `json:"outlet_name" parquet:"name=outlet_name,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
	Location   *string `json:"location" parquet:"name=location,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
	MenuItem   *string `json:"menu_item" parquet:"name=menu_item,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
	OrderType  *string `json:"order_type" parquet:"name=order_type,type=BYTE_ARRAY,convertedtype=UTF8,repetitiontype=OPTIONAL"`
	Status     string  `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
	Timestamp  int64   `json:"timestamp" parquet:"name=timestamp,type=INT64"`
}

// Time returns the event timestamp in UTC.
func (e OrderEvent) Time() time.Time {
	return time.Unix(e.Timestamp, 0).UTC()
}

// HasLocation reports whether the row carries a non-missing location. Only
// such rows count towards demand.
func (e OrderEvent) HasLocation() bool {
	return e.Location != nil
}
