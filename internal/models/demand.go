package models

import "time"

// DemandRecord is the hourly order count for one location. Hour is the unix
// timestamp of the hour boundary (minutes and seconds zeroed).
type DemandRecord struct {
	Location string `json:"location" parquet:"name=location,type=BYTE_ARRAY,convertedtype=UTF8"`
	Hour     int64  `json:"hour" parquet:"name=hour,type=INT64"`
	Demand   int64  `json:"demand" parquet:"name=demand,type=INT64"`
}

// HourTime returns the hour boundary in UTC.
func (r DemandRecord) HourTime() time.Time {
	return time.Unix(r.Hour, 0).UTC()
}

// FeatureRow is one model-ready row: hourly demand plus backward-looking lag
// features, weekly recurrence features and calendar features. Every lag and
// same-hour column is always populated; rows without enough history are
// dropped by the builder, never imputed.
type FeatureRow struct {
	Location string `json:"location" parquet:"name=location,type=BYTE_ARRAY,convertedtype=UTF8"`
	Datetime int64  `json:"datetime" parquet:"name=datetime,type=INT64"`
	Demand   int64  `json:"demand" parquet:"name=demand,type=INT64"`

	Lag1  int64 `json:"lag_1" parquet:"name=lag_1,type=INT64"`
	Lag2  int64 `json:"lag_2" parquet:"name=lag_2,type=INT64"`
	Lag3  int64 `json:"lag_3" parquet:"name=lag_3,type=INT64"`
	Lag4  int64 `json:"lag_4" parquet:"name=lag_4,type=INT64"`
	Lag5  int64 `json:"lag_5" parquet:"name=lag_5,type=INT64"`
	Lag6  int64 `json:"lag_6" parquet:"name=lag_6,type=INT64"`
	Lag7  int64 `json:"lag_7" parquet:"name=lag_7,type=INT64"`
	Lag8  int64 `json:"lag_8" parquet:"name=lag_8,type=INT64"`
	Lag9  int64 `json:"lag_9" parquet:"name=lag_9,type=INT64"`
	Lag10 int64 `json:"lag_10" parquet:"name=lag_10,type=INT64"`
	Lag11 int64 `json:"lag_11" parquet:"name=lag_11,type=INT64"`
	Lag12 int64 `json:"lag_12" parquet:"name=lag_12,type=INT64"`
	Lag13 int64 `json:"lag_13" parquet:"name=lag_13,type=INT64"`
	Lag14 int64 `json:"lag_14" parquet:"name=lag_14,type=INT64"`
	Lag15 int64 `json:"lag_15" parquet:"name=lag_15,type=INT64"`
	Lag16 int64 `json:"lag_16" parquet:"name=lag_16,type=INT64"`
	Lag17 int64 `json:"lag_17" parquet:"name=lag_17,type=INT64"`
	Lag18 int64 `json:"lag_18" parquet:"name=lag_18,type=INT64"`
	Lag19 int64 `json:"lag_19" parquet:"name=lag_19,type=INT64"`
	Lag20 int64 `json:"lag_20" parquet:"name=lag_20,type=INT64"`
	Lag21 int64 `json:"lag_21" parquet:"name=lag_21,type=INT64"`
	Lag22 int64 `json:"lag_22" parquet:"name=lag_22,type=INT64"`
	Lag23 int64 `json:"lag_23" parquet:"name=lag_23,type=INT64"`
	Lag24 int64 `json:"lag_24" parquet:"name=lag_24,type=INT64"`

	SameHour1DAgo int64 `json:"same_hour_1d_ago" parquet:"name=same_hour_1d_ago,type=INT64"`
	SameHour2DAgo int64 `json:"same_hour_2d_ago" parquet:"name=same_hour_2d_ago,type=INT64"`
	SameHour3DAgo int64 `json:"same_hour_3d_ago" parquet:"name=same_hour_3d_ago,type=INT64"`
	SameHour4DAgo int64 `json:"same_hour_4d_ago" parquet:"name=same_hour_4d_ago,type=INT64"`
	SameHour5DAgo int64 `json:"same_hour_5d_ago" parquet:"name=same_hour_5d_ago,type=INT64"`
	SameHour6DAgo int64 `json:"same_hour_6d_ago" parquet:"name=same_hour_6d_ago,type=INT64"`
	SameHour7DAgo int64 `json:"same_hour_7d_ago" parquet:"name=same_hour_7d_ago,type=INT64"`

	HourOfDay  int32 `json:"hour_of_day" parquet:"name=hour_of_day,type=INT32"`
	DayOfWeek  int32 `json:"day_of_week" parquet:"name=day_of_week,type=INT32"`
	IsWeekend  int32 `json:"is_weekend" parquet:"name=is_weekend,type=INT32"`
	WeekOfYear int32 `json:"week_of_year" parquet:"name=week_of_year,type=INT32"`
	Month      int32 `json:"month" parquet:"name=month,type=INT32"`
	IsHoliday  int32 `json:"is_holiday" parquet:"name=is_holiday,type=INT32"`
}

// Lag returns the lag_k column value for k in 1..24.
func (f *FeatureRow) Lag(k int) int64 {
	lags := [...]int64{
		f.Lag1, f.Lag2, f.Lag3, f.Lag4, f.Lag5, f.Lag6, f.Lag7, f.Lag8,
		f.Lag9, f.Lag10, f.Lag11, f.Lag12, f.Lag13, f.Lag14, f.Lag15, f.Lag16,
		f.Lag17, f.Lag18, f.Lag19, f.Lag20, f.Lag21, f.Lag22, f.Lag23, f.Lag24,
	}
	return lags[k-1]
}

// SetLag assigns the lag_k column for k in 1..24.
func (f *FeatureRow) SetLag(k int, v int64) {
	switch k {
	case 1:
		f.Lag1 = v
	case 2:
		f.Lag2 = v
	case 3:
		f.Lag3 = v
	case 4:
		f.Lag4 = v
	case 5:
		f.Lag5 = v
	case 6:
		f.Lag6 = v
	case 7:
		f.Lag7 = v
	case 8:
		f.Lag8 = v
	case 9:
		f.Lag9 = v
	case 10:
		f.Lag10 = v
	case 11:
		f.Lag11 = v
	case 12:
		f.Lag12 = v
	case 13:
		f.Lag13 = v
	case 14:
		f.Lag14 = v
	case 15:
		f.Lag15 = v
	case 16:
		f.Lag16 = v
	case 17:
		f.Lag17 = v
	case 18:
		f.Lag18 = v
	case 19:
		f.Lag19 = v
	case 20:
		f.Lag20 = v
	case 21:
		f.Lag21 = v
	case 22:
		f.Lag22 = v
	case 23:
		f.Lag23 = v
	case 24:
		f.Lag24 = v
	}
}

// SameHour returns the same_hour_{d}d_ago column value for d in 1..7.
func (f *FeatureRow) SameHour(d int) int64 {
	same := [...]int64{
		f.SameHour1DAgo, f.SameHour2DAgo, f.SameHour3DAgo, f.SameHour4DAgo,
		f.SameHour5DAgo, f.SameHour6DAgo, f.SameHour7DAgo,
	}
	return same[d-1]
}

// SetSameHour assigns the same_hour_{d}d_ago column for d in 1..7.
func (f *FeatureRow) SetSameHour(d int, v int64) {
	switch d {
	case 1:
		f.SameHour1DAgo = v
	case 2:
		f.SameHour2DAgo = v
	case 3:
		f.SameHour3DAgo = v
	case 4:
		f.SameHour4DAgo = v
	case 5:
		f.SameHour5DAgo = v
	case 6:
		f.SameHour6DAgo = v
	case 7:
		f.SameHour7DAgo = v
	}
}
