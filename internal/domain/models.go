package domain

import "time"

// Row shapes mirror the columns the API returns. Pointer fields carry SQL
// NULL through to JSON null; aggregates COALESCE instead (see stats repo).

// TripRow is one line of the trips listing: the trip joined with its
// driver, unit, order, order customer, and latest cost snapshot.
type TripRow struct {
	TripID          int64      `json:"TripID"`
	RawTripID       *string    `json:"RawTripId"`
	TripStatus      *string    `json:"TripStatus"`
	WeekStart       *time.Time `json:"WeekStart"`
	Miles           *int64     `json:"Miles"`
	BorderCrossings *int64     `json:"BorderCrossings"`
	DropHookCount   *int64     `json:"DropHookCount"`
	PickupCount     *int64     `json:"PickupCount"`
	DeliveryCount   *int64     `json:"DeliveryCount"`
	MinimumRevenue  *float64   `json:"MinimumRevenue"`
	RequiredRevenue *float64   `json:"RequiredRevenue"`

	DriverID   *int64  `json:"DriverID"`
	DriverName *string `json:"DriverName"`
	DriverType *string `json:"DriverType"`

	UnitID     *int64  `json:"UnitID"`
	UnitNumber *string `json:"UnitNumber"`

	OrderID      *int64   `json:"OrderID"`
	Origin       *string  `json:"Origin"`
	Destination  *string  `json:"Destination"`
	OrderMiles   *int64   `json:"OrderMiles"`
	OrderRevenue *float64 `json:"OrderRevenue"`
	OrderStatus  *string  `json:"OrderStatus"`

	CustomerID   *int64  `json:"CustomerID"`
	CustomerCode *string `json:"CustomerCode"`
	CustomerName *string `json:"CustomerName"`

	CostID          *int64     `json:"CostID"`
	TotalCPM        *float64   `json:"TotalCPM"`
	TotalCost       *float64   `json:"TotalCost"`
	CostRevenue     *float64   `json:"CostRevenue"`
	Profit          *float64   `json:"Profit"`
	IsManual        *bool      `json:"IsManual"`
	ManualTotalCost *float64   `json:"ManualTotalCost"`
	ManualReason    *string    `json:"ManualReason"`
	CostCreatedAt   *time.Time `json:"CostCreatedAt"`
}

// TripDetail is the single-trip view; unlike TripRow it joins the primary
// order and includes the cost model internals.
type TripDetail struct {
	TripID          int64      `json:"TripID"`
	RawTripID       *string    `json:"RawTripId"`
	WeekStart       *time.Time `json:"WeekStart"`
	Miles           *int64     `json:"Miles"`
	BorderCrossings *int64     `json:"BorderCrossings"`
	DropHookCount   *int64     `json:"DropHookCount"`
	PickupCount     *int64     `json:"PickupCount"`
	DeliveryCount   *int64     `json:"DeliveryCount"`
	MinimumRevenue  *float64   `json:"MinimumRevenue"`
	RequiredRevenue *float64   `json:"RequiredRevenue"`
	Status          *string    `json:"Status"`
	PrimaryOrderID  *int64     `json:"PrimaryOrderID"`

	DriverID   *int64  `json:"DriverID"`
	DriverName *string `json:"DriverName"`
	DriverType *string `json:"DriverType"`

	UnitID     *int64  `json:"UnitID"`
	UnitNumber *string `json:"UnitNumber"`

	OrderID      *int64   `json:"OrderID"`
	CustomerName *string  `json:"CustomerName"`
	Origin       *string  `json:"Origin"`
	Destination  *string  `json:"Destination"`
	OrderRevenue *float64 `json:"OrderRevenue"`

	CostID          *int64     `json:"CostID"`
	TotalCPM        *float64   `json:"TotalCPM"`
	TotalCost       *float64   `json:"TotalCost"`
	CostRevenue     *float64   `json:"CostRevenue"`
	Profit          *float64   `json:"Profit"`
	IsManual        *bool      `json:"IsManual"`
	ManualTotalCost *float64   `json:"ManualTotalCost"`
	ManualReason    *string    `json:"ManualReason"`
	CostCreatedAt   *time.Time `json:"CostCreatedAt"`
	WageMultiplier  *float64   `json:"WageMultiplier"`
	AccessorialCost *float64   `json:"AccessorialCost"`
}

// TripCost is a full valuation snapshot row. Snapshots are append-only;
// the latest one (max CreatedAt, then max CostID) is the current valuation.
type TripCost struct {
	CostID          int64     `json:"CostID"`
	TripID          int64     `json:"TripID"`
	Miles           *int64    `json:"Miles"`
	TotalCPM        *float64  `json:"TotalCPM"`
	TotalCost       *float64  `json:"TotalCost"`
	Revenue         *float64  `json:"Revenue"`
	Profit          *float64  `json:"Profit"`
	IsManual        bool      `json:"IsManual"`
	ManualTotalCost *float64  `json:"ManualTotalCost"`
	ManualReason    *string   `json:"ManualReason"`
	CreatedAt       time.Time `json:"CreatedAt"`
	WageMultiplier  *float64  `json:"WageMultiplier"`
	AccessorialCost *float64  `json:"AccessorialCost"`
}

type TripEvent struct {
	TripEventID int64     `json:"TripEventID"`
	TripID      int64     `json:"TripID"`
	EventType   string    `json:"EventType"`
	EventTime   time.Time `json:"EventTime"`
	City        *string   `json:"City"`
	State       *string   `json:"State"`
	Note        *string   `json:"Note"`
}

type Order struct {
	OrderID     int64    `json:"OrderID"`
	CustomerID  *int64   `json:"CustomerID"`
	Customer    *string  `json:"Customer"`
	Origin      string   `json:"Origin"`
	Destination string   `json:"Destination"`
	Miles       *int64   `json:"Miles"`
	Revenue     *float64 `json:"Revenue"`
	Status      *string  `json:"Status"`
}

type Driver struct {
	DriverID int64   `json:"DriverID"`
	Name     string  `json:"Name"`
	Type     *string `json:"Type"`
}

type Unit struct {
	UnitID     int64  `json:"UnitID"`
	UnitNumber string `json:"UnitNumber"`
	DriverID   *int64 `json:"DriverID"`
}

// BoardRow is a dispatch-board line: active trip plus latest cost figures
// and the derived margin.
type BoardRow struct {
	TripID       int64    `json:"TripID"`
	Status       string   `json:"Status"`
	DriverID     *int64   `json:"DriverID"`
	DriverName   *string  `json:"DriverName"`
	DriverType   *string  `json:"DriverType"`
	UnitID       *int64   `json:"UnitID"`
	UnitNumber   *string  `json:"UnitNumber"`
	CustomerName *string  `json:"CustomerName"`
	Origin       *string  `json:"Origin"`
	Destination  *string  `json:"Destination"`
	Miles        *int64   `json:"Miles"`
	Revenue      *float64 `json:"Revenue"`
	TotalCost    *float64 `json:"TotalCost"`
	Profit       *float64 `json:"Profit"`
	MarginPct    *float64 `json:"MarginPct"`
}

// TrackingRow is an in-flight trip with its most recent timeline event.
type TrackingRow struct {
	TripID        int64      `json:"TripID"`
	Status        *string    `json:"Status"`
	Miles         *int64     `json:"Miles"`
	DriverName    *string    `json:"DriverName"`
	UnitNumber    *string    `json:"UnitNumber"`
	CustomerName  *string    `json:"CustomerName"`
	Origin        *string    `json:"Origin"`
	Destination   *string    `json:"Destination"`
	Revenue       *float64   `json:"Revenue"`
	LastEventType *string    `json:"LastEventType"`
	LastEventTime *time.Time `json:"LastEventTime"`
}

// ReportRow zero-defaults its money figures; only the margin stays null
// when there is no positive revenue to divide by.
type ReportRow struct {
	TripID       int64      `json:"TripID"`
	WeekStart    *time.Time `json:"WeekStart"`
	Status       *string    `json:"Status"`
	Miles        *int64     `json:"Miles"`
	DriverName   *string    `json:"DriverName"`
	DriverType   *string    `json:"DriverType"`
	UnitNumber   *string    `json:"UnitNumber"`
	CustomerName *string    `json:"CustomerName"`
	Origin       *string    `json:"Origin"`
	Destination  *string    `json:"Destination"`
	Revenue      float64    `json:"Revenue"`
	TotalCost    float64    `json:"TotalCost"`
	Profit       float64    `json:"Profit"`
	TotalCPM     float64    `json:"TotalCPM"`
	MarginPct    *float64   `json:"MarginPct"`
}

// DashboardMetrics are the fleet-wide rollups. Trips with NULL mileage are
// excluded everywhere; trips without any cost snapshot contribute zero to
// the money totals.
type DashboardMetrics struct {
	TotalTrips       int64   `json:"totalTrips"`
	TripsWithCost    int64   `json:"tripsWithCost"`
	TotalMiles       int64   `json:"totalMiles"`
	TotalRequiredRev float64 `json:"totalRequiredRev"`
	TotalMinRev      float64 `json:"totalMinRev"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalCost        float64 `json:"totalCost"`
	TotalProfit      float64 `json:"totalProfit"`
	RPM              float64 `json:"rpm"`
	CPM              float64 `json:"cpm"`
	MarginPct        float64 `json:"marginPct"`
	ProfitableTrips  int64   `json:"profitableTrips"`
	AtRiskTrips      int64   `json:"atRiskTrips"`
}

// DriverTypeAggregate groups latest-cost rollups by driver type.
type DriverTypeAggregate struct {
	DriverType string  `json:"DriverType"`
	Trips      int64   `json:"Trips"`
	Miles      int64   `json:"Miles"`
	Revenue    float64 `json:"Revenue"`
	Cost       float64 `json:"Cost"`
	Profit     float64 `json:"Profit"`
	MarginPct  float64 `json:"MarginPct"`
}

// CustomerAggregate groups latest-cost rollups by order customer.
type CustomerAggregate struct {
	CustomerName string  `json:"CustomerName"`
	Trips        int64   `json:"Trips"`
	Miles        int64   `json:"Miles"`
	Revenue      float64 `json:"Revenue"`
	Cost         float64 `json:"Cost"`
	Profit       float64 `json:"Profit"`
	MarginPct    float64 `json:"MarginPct"`
}
